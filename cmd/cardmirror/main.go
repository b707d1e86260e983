package main

import (
	"flag"
	"fmt"
	"os"

	"cardmirror/internal/di"
	"cardmirror/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "force debug log level")
	flag.Parse()

	_, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cardmirror: %s\n", err)
		os.Exit(1)
	}
}
