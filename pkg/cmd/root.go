package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utensor-cgen",
	Short: "generate C/C++ snippet files for embedded inference graphs.",
	Long: `utensor-cgen renders code-generation snippets (such as the
	tensor-names header) from YAML manifests describing the tensors of a
	compiled graph.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// Execute runs the command-line interface, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogging applies logging flags before a command runs.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// GetFlag returns the value of a boolean flag, failing hard on lookup errors
// since those indicate a wiring bug rather than bad user input.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}
	return r
}

// GetString returns the value of a string flag.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Fatal(err)
	}
	return r
}
