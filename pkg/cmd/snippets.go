package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	utensorcgen "github.com/neil-tan/utensor-cgen"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "list the built-in snippets.",
	Run: func(cmd *cobra.Command, _ []string) {
		configureLogging(cmd)

		registry, err := utensorcgen.DefaultRegistry()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range registry.List() {
			snippet := registry.MustGet(name)
			fmt.Printf("%s\t%s\n", name, snippet.ContentType())
		}
	},
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
}
