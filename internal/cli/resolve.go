package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/pipeline"
	"github.com/matzehuels/cardframe/pkg/template"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		output     string
		iterations int
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <template.json>",
		Short: "Resolve a template into component rectangles",
		Long: `Resolve reads a card template, runs the constraint solver, and emits the
resolved layout as JSON. Results are cached against a content hash of the
template, so repeated runs are instant until the template changes.`,
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

			if iterations == 0 {
				iterations = c.Config.MaxIterations
			}

			p := newProgress(c.Logger)
			result, err := runner.Resolve(cmd.Context(), tmpl, pipeline.Options{
				MaxIterations: iterations,
				Refresh:       refresh,
				Logger:        c.Logger,
			})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Resolved %d components", result.Stats.ComponentCount))

			data, err := template.MarshalResult(result.Layout)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Println(string(data))
			} else {
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("Layout written")
				printFile(output)
			}

			printStats(result.Stats.ComponentCount, result.Stats.ConstraintCount,
				result.Strategy, result.CacheHit)
			printNextStep("Preview it", fmt.Sprintf("cardframe preview %s", path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "solver pass budget (default: engine default)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}
