package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HWRM/KarosGraveyard/pkg/vector"
	"github.com/HWRM/KarosGraveyard/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vec3",
	Short: "A command-line calculator for 3D vectors",
	Long: `vec3 is a command-line tool for 3D vector arithmetic.
It supports the full operator set (addition, subtraction, scalar
multiplication and division, elementwise power, negation) plus the
geometric utilities: magnitude, unit vector, absolute value, dot and
cross products, and the angle between two vectors.`,
	Version: version.GetFullVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
				os.Exit(1)
			}
			vector.SetLogger(logger)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log operand diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
