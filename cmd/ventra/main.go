// Command ventra solves pressure-release maximization puzzles: it reads a
// textual valve-network description and reports the best achievable release
// for one agent (single) or two cooperating agents (dual).
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Cobra handles argument parsing and prints usage on error.
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
