package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/pipeline"
	"github.com/matzehuels/cardframe/pkg/render"
	"github.com/matzehuels/cardframe/pkg/template"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		svgOut  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "preview <template.json>",
		Short: "Preview a resolved layout in the terminal",
		Long: `Preview resolves a template and draws the resulting layout as scaled boxes
in the terminal. Use the arrow keys to cycle through components and inspect
their rectangles. With --svg the preview is written as an SVG file instead
of opening the interactive view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := errors.ValidateTemplateFilename(path); err != nil {
				return err
			}

			tmpl, err := template.ReadFile(path)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Resolve(cmd.Context(), tmpl, pipeline.Options{
				MaxIterations: c.Config.MaxIterations,
				Logger:        c.Logger,
			})
			if err != nil {
				return err
			}

			if svgOut != "" {
				svg := render.LayoutSVG(result.Layout)
				if err := os.WriteFile(svgOut, svg, 0644); err != nil {
					return fmt.Errorf("write %s: %w", svgOut, err)
				}
				printSuccess("Preview written")
				printFile(svgOut)
				return nil
			}

			model := NewPreviewModel(tmpl, result.Layout)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG preview instead of the interactive view")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")

	return cmd
}
