package main

import (
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/parse"

	"github.com/spf13/cobra"
)

func parseCMD() *cobra.Command {
	var mode string

	var cmd = &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a model reply into a takeaways or visual document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseReply(cmd, mode, argOrStdin(args))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ModeTakeaways), "takeaways or visual")

	return cmd
}

func parseReply(cmd *cobra.Command, mode, source string) (domain.ParsedDocument, error) {
	m := domain.Mode(mode)
	if !m.Valid() {
		return domain.ParsedDocument{}, usageError("unknown mode %q: want takeaways or visual", mode)
	}
	reply, err := readInput(cmd, source)
	if err != nil {
		return domain.ParsedDocument{}, err
	}
	return parse.Parse(m, reply), nil
}
