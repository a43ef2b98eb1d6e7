package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config mirrors the optional YAML file passed via --config. Flags set on
// the command line keep priority over file values.
type Config struct {
	Time     int    `yaml:"time"`
	Start    string `yaml:"start"`
	ShowPath bool   `yaml:"show_path"`
}

var (
	cfg       Config
	cfgPath   string
	flagTime  int
	flagStart string
	flagPath  bool
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "ventra",
	Short: "Maximize pressure release in a valve network within a time budget",
	Long: `ventra parses a textual valve-network description and runs a
branch-and-bound search for the action schedule that releases the most
pressure before the clock runs out, for one agent (single) or two
cooperating agents (dual).

Input lines look like:

  Valve AA has flow rate=0; tunnels lead to valves DD, II, BB`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().IntVar(&flagTime, "time", 0, "time budget in ticks (0 = variant default)")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "start room name (default AA)")
	rootCmd.PersistentFlags().BoolVar(&flagPath, "show-path", false, "print the winning action schedule")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "verbose", "v", false, "verbose diagnostics")
	rootCmd.PersistentPreRunE = loadConfig
	rootCmd.AddCommand(singleCmd, dualCmd)
}

// loadConfig applies --verbose and folds the optional YAML file into any
// flag the user did not set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	if cfgPath == "" {
		return nil
	}
	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if !cmd.Flags().Changed("time") && cfg.Time > 0 {
		flagTime = cfg.Time
	}
	if !cmd.Flags().Changed("start") && cfg.Start != "" {
		flagStart = cfg.Start
	}
	if !cmd.Flags().Changed("show-path") && cfg.ShowPath {
		flagPath = true
	}
	log.WithField("path", cfgPath).Debug("config loaded")

	return nil
}
