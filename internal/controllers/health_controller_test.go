package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmirror/internal/scryfall"
	"cardmirror/internal/structures"
	"cardmirror/internal/testutil"
)

func newTestPacer() *scryfall.Pacer {
	conf := &structures.Config{
		Scryfall: structures.ScryfallConfig{MinInterval: time.Millisecond},
	}
	return scryfall.NewPacer(conf, testutil.NewMockMetrics())
}

func TestHealth_ReturnsOK(t *testing.T) {
	hc := NewHealthController(newTestPacer())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}

func TestHealth_ReportsGatedCalls(t *testing.T) {
	pacer := newTestPacer()
	require.NoError(t, pacer.Gate(context.Background()))
	require.NoError(t, pacer.Gate(context.Background()))

	hc := NewHealthController(pacer)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.GatedCalls)
}

func TestHealth_RejectsPost(t *testing.T) {
	hc := NewHealthController(newTestPacer())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m5s", formatDuration(5*time.Second))
	assert.Equal(t, "1h1m1s", formatDuration(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "25h0m0s", formatDuration(25*time.Hour))
}
