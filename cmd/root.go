package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/parcel-sim/parcel-sim/sim"
	"github.com/parcel-sim/parcel-sim/sim/trace"
)

var (
	logLevel    string // Log verbosity level (diagnostics only, never stdout)
	showMetrics bool   // Print the end-of-run statistics summary to stderr
)

// rootCmd is the base command: it runs the simulation over one input file.
// The trace line stream goes to stdout; diagnostics and the optional
// metrics summary go to stderr.
var rootCmd = &cobra.Command{
	Use:   "parcel-sim <inputFile>",
	Short: "Discrete-event simulator for parcel-logistics networks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := sim.LoadConfig(args[0])
		if err != nil {
			return err
		}
		logrus.Infof("Starting simulation with %d warehouses, %d postings, capacity=%d, latency=%d, interval=%d, removal=%d",
			cfg.NumWarehouses, len(cfg.Postings), cfg.TransportCapacity,
			cfg.TransitLatency, cfg.TransportInterval, cfg.RemovalCost)

		s := sim.NewSimulator(cfg, trace.NewEmitter(cmd.OutOrStdout()))
		if err := s.Run(); err != nil {
			return err
		}
		if showMetrics {
			s.Metrics.Print(os.Stderr)
		}
		logrus.Info("Simulation complete.")
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print aggregate statistics to stderr after the run")
}
