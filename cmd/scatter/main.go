package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/scatter"
)

// Runs the reference scenario and streams the iteration trace to stdout.
// No flags, no environment: the run is fully determined by DefaultConfig.
func main() {
	sampler := scatter.New(scatter.DefaultConfig(), os.Stdout)
	if _, err := sampler.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
}
