package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ventra/pressure"
	"github.com/katalvlaran/ventra/vent"
)

var singleCmd = &cobra.Command{
	Use:   "single [file]",
	Short: "One agent, default time budget 30 ticks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSolve(args, 1)
	},
}

var dualCmd = &cobra.Command{
	Use:   "dual [file]",
	Short: "Two cooperating agents, default time budget 26 ticks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSolve(args, 2)
	},
}

// runSolve reads the network from the file argument (or stdin), resolves
// the effective options, runs the requested variant, and prints the best
// release (plus the schedule with --show-path).
func runSolve(args []string, agents int) error {
	var (
		in   io.Reader = os.Stdin
		name           = "stdin"
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	net, err := vent.ParseText(in)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"input": name, "rooms": net.Order()}).Debug("network parsed")

	opts := pressure.Options{TimeBudget: flagTime, Start: flagStart, ReturnPath: flagPath}
	if opts.TimeBudget == 0 {
		opts.TimeBudget = pressure.DefaultTimeBudget
		if agents == 2 {
			opts.TimeBudget = pressure.DualTimeBudget
		}
	}
	if opts.Start == "" {
		opts.Start = pressure.DefaultStart
	}

	started := time.Now()
	var res pressure.Result
	if agents == 2 {
		res, err = pressure.SolveDual(net, opts)
	} else {
		res, err = pressure.SolveSingle(net, opts)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"states":  res.States,
		"elapsed": time.Since(started),
	}).Debug("search complete")

	fmt.Println(res.Released)
	if flagPath {
		printPath(net, res.Path)
	}

	return nil
}

// printPath renders one line per tick, one column per agent.
func printPath(net *vent.Network, path [][]pressure.Action) {
	for tick, acts := range path {
		parts := make([]string, 0, len(acts))
		for _, a := range acts {
			parts = append(parts, formatAction(net, a))
		}
		fmt.Printf("%2d  %s\n", tick, strings.Join(parts, " | "))
	}
}

func formatAction(net *vent.Network, a pressure.Action) string {
	switch a.Kind {
	case pressure.Move:
		if a.Owed > 0 {
			return fmt.Sprintf("move %s (%d to go)", net.Name(a.Room), a.Owed)
		}

		return "move " + net.Name(a.Room)
	case pressure.Open:
		return "open " + net.Name(a.Room)
	default:
		return a.Kind.String()
	}
}
