package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/render"
	"github.com/matzehuels/cardframe/pkg/template"
)

// graphCommand creates the constraint graph visualization command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph <template.json>",
		Short: "Visualize a template's constraint graph",
		Long: `Graph draws the constraint graph of a template: components as boxes, the
container as a distinguished node, and every constraint as a labeled edge.
Dangling constraints (targets that do not exist) are drawn dashed, mirroring
how the solver skips them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := errors.ValidateTemplateFilename(path); err != nil {
				return err
			}
			if format != "dot" && format != "svg" {
				return errors.New(errors.ErrCodeInvalidInput,
					"invalid format %q (must be dot or svg)", format)
			}

			tmpl, err := template.ReadFile(path)
			if err != nil {
				return err
			}

			dot := render.ToDOT(tmpl, render.Options{Detailed: detailed})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = render.RenderSVG(dot)
				if err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Constraint graph written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include sizes and margins in node labels")

	return cmd
}
