package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	utensorcgen "github.com/neil-tan/utensor-cgen"
	"github.com/neil-tan/utensor-cgen/pkg/manifest"
)

var headerCmd = &cobra.Command{
	Use:   "header [flags] manifest_file",
	Short: "render a snippet header from a tensor manifest.",
	Long: `Render a snippet (the tensor-names header by default) from a YAML
	manifest listing the header guard, the tensor count, and the ordered
	macro-name/index assignment.`,
	Run: runHeaderCmd,
}

func init() {
	headerCmd.Flags().StringP("output", "o", "", "output file (stdout if empty)")
	headerCmd.Flags().String("snippet", "tensor-names", "snippet to render")
	headerCmd.Flags().Bool("skip-validation", false, "render the manifest verbatim without identifier checks")
	headerCmd.Flags().BoolP("interactive", "i", false, "prompt for missing fields and confirm overwrites")
	rootCmd.AddCommand(headerCmd)
}

func runHeaderCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	configureLogging(cmd)

	output := GetString(cmd, "output")
	snippetName := GetString(cmd, "snippet")
	skipValidation := GetFlag(cmd, "skip-validation")
	interactive := GetFlag(cmd, "interactive")

	m, err := manifest.Load(args[0])
	if err != nil {
		log.Fatal(err)
	}
	log.Debugf("loaded manifest %q with %d tensor entries", args[0], len(m.Tensors))

	if interactive && m.HeaderGuard == "" {
		guard, err := promptHeaderGuard()
		if err != nil {
			log.Fatal(err)
		}
		m.HeaderGuard = guard
	}

	if !skipValidation {
		if err := m.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	registry, err := utensorcgen.DefaultRegistry()
	if err != nil {
		log.Fatal(err)
	}
	snippet, err := registry.Get(snippetName)
	if err != nil {
		log.Fatal(err)
	}

	rendered, err := snippet.Render(context.Background(), m.RenderRequest())
	if err != nil {
		log.Fatal(err)
	}

	if output == "" {
		fmt.Print(string(rendered))
		return
	}

	if interactive && fileExists(output) {
		overwrite, err := confirmOverwrite(output)
		if err != nil {
			log.Fatal(err)
		}
		if !overwrite {
			log.Infof("left %s untouched", output)
			return
		}
	}

	if err := os.WriteFile(output, rendered, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %s (%d bytes)", output, len(rendered))
}

func promptHeaderGuard() (string, error) {
	var guard string
	prompt := &survey.Input{
		Message: "Header guard identifier:",
		Help:    "must be unique per generated header, e.g. MODEL_TENSOR_NAMES_H",
	}
	if err := survey.AskOne(prompt, &guard, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("cmd: prompt header guard: %w", err)
	}
	return guard, nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false, fmt.Errorf("cmd: confirm overwrite: %w", err)
	}
	return overwrite, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
