package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/radarhq/techradar/pkg/radar/sink"
	"github.com/radarhq/techradar/pkg/source/sample"
)

// sampleCommand writes the built-in dataset to disk as a starting
// point for a new radar.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the built-in sample dataset as a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sink.RenderCSV(sample.Items())
			if err != nil {
				return err
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			printFile(output)
			printNextStep("Render it with", appName+" render "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "radar-sample.csv", "destination file")

	return cmd
}
