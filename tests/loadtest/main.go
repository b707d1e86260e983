package main

import (
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

// cardNames is a small fixed pool so most lookups after the warmup phase
// are cache hits and never touch the upstream API.
var cardNames = []string{
	"Lightning Bolt", "Counterspell", "Llanowar Elves", "Dark Ritual",
	"Swords to Plowshares", "Brainstorm", "Duress", "Shock",
	"Giant Growth", "Opt", "Ponder", "Doom Blade",
	"Mountain", "Island", "Forest", "Swamp", "Plains",
}

var prefixes = []string{"ligh", "coun", "llan", "sword", "brain", "mount", "isl"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== CardMirror Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Card pool: %d\n\n", numWorkers, testDuration, len(cardNames))

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: warm the cache, one lookup per pooled name
	fmt.Println("\n--- Phase 1: Cache warmup (GET /card) ---")
	for _, name := range cardNames {
		r := doGetCard(name)
		fmt.Printf("  %-24s %d (%s)\n", name, r.status, fmtDur(r.latency))
	}

	// Phase 2: lookup-heavy load, should be nearly all cache hits
	fmt.Println("\n--- Phase 2: Lookup-heavy load (80% card, 20% autocomplete) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.80 {
			return doGetCard(cardNames[rng.Intn(len(cardNames))])
		}
		return doGetAutocomplete(prefixes[rng.Intn(len(prefixes))])
	})

	// Phase 3: mixed load including codec round-trips
	fmt.Println("\n--- Phase 3: Mixed load (50% card, 25% import, 25% autocomplete) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doGetCard(cardNames[rng.Intn(len(cardNames))])
		case r < 0.75:
			return doImport(rng)
		default:
			return doGetAutocomplete(prefixes[rng.Intn(len(prefixes))])
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGetCard(name string) result {
	reqURL := baseURL + "/card?name=" + url.QueryEscape(name)
	start := time.Now()
	resp, err := httpClient.Get(reqURL)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /card", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /card", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetAutocomplete(prefix string) result {
	reqURL := baseURL + "/autocomplete?q=" + url.QueryEscape(prefix)
	start := time.Now()
	resp, err := httpClient.Get(reqURL)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /autocomplete", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /autocomplete", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doImport(rng *rand.Rand) result {
	var b strings.Builder
	n := rng.Intn(8) + 3
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d %s\n", rng.Intn(4)+1, cardNames[rng.Intn(len(cardNames))])
	}

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/import?format=text", "text/plain", strings.NewReader(b.String()))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /import", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /import", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
