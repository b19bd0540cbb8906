package main

import (
	"fmt"

	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/render"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"
)

func renderCMD() *cobra.Command {
	var mode string
	var panel bool
	var asJSON bool
	var asMarkdown bool

	var cmd = &cobra.Command{
		Use:   "render [file|-]",
		Short: "Parse a model reply and print the rendered panel sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseReply(cmd, mode, argOrStdin(args))
			if err != nil {
				return err
			}

			var nodes []render.VisualNode
			if panel {
				nodes = []render.VisualNode{render.RenderPanel(render.View{
					Mode:     doc.Mode,
					Phase:    domain.PhaseResult,
					Document: &doc,
				})}
			} else {
				nodes = render.RenderSections(doc, nil)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), nodes)
			}
			out, err := render.HTML(nodes...)
			if err != nil {
				return err
			}
			if asMarkdown {
				if out, err = htmltomarkdown.ConvertString(out); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ModeTakeaways), "takeaways or visual")
	cmd.Flags().BoolVar(&panel, "panel", false, "render the whole panel instead of the sections only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the node tree as JSON instead of HTML")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "convert the rendered HTML to Markdown")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}
