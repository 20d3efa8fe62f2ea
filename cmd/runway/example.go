package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/runway-calculator/internal/config"
)

func newExampleCmd() *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or save an example input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if outputFile != "" {
				if err := config.SaveConfiguration(example, outputFile); err != nil {
					return fmt.Errorf("failed to save example: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Example configuration written to %s\n", outputFile)
				return nil
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(example); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the example to this file")
	return cmd
}
