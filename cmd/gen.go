package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/parcel-sim/parcel-sim/sim/workload"
)

var (
	genSpecPath string // Path to the YAML scenario spec
	genOutPath  string // Output file ("-" for stdout)
	genSeed     int64  // Overrides the spec's seed when set
)

// genCmd generates a simulation input file from a scenario spec.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a simulation input file from a YAML scenario spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		spec, err := workload.LoadScenarioSpec(genSpecPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			spec.Seed = genSeed
		}

		cfg := workload.NewGenerator(spec).Generate()

		out := cmd.OutOrStdout()
		if genOutPath != "-" {
			f, err := os.Create(genOutPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return workload.WriteInput(out, cfg)
	},
	SilenceUsage: true,
}

func init() {
	genCmd.Flags().StringVar(&genSpecPath, "spec", "scenario.yaml", "YAML scenario spec path")
	genCmd.Flags().StringVar(&genOutPath, "out", "-", "Output path (\"-\" writes to stdout)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Override the spec's random seed")
	rootCmd.AddCommand(genCmd)
}
