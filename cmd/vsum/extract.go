package main

import (
	"strings"
	"time"

	"visual-summarizer-api/core/extract"
	collyfetch "visual-summarizer-api/infrastructure/fetch/colly"

	"github.com/spf13/cobra"
)

func extractCMD() *cobra.Command {
	var pageURL string
	var readability bool
	var timeout time.Duration

	var cmd = &cobra.Command{
		Use:   "extract [file|url|-]",
		Short: "Print the readable text and content images of a page as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := argOrStdin(args)

			var html string
			if isRemote(source) {
				page, err := collyfetch.NewFetcher(nil, timeout).Fetch(cmd.Context(), source)
				if err != nil {
					return err
				}
				html = page.HTML
				if pageURL == "" {
					pageURL = page.URL
				}
			} else {
				var err error
				if html, err = readInput(cmd, source); err != nil {
					return err
				}
			}

			extractor := extract.NewExtractor(extract.Options{ReadabilityFallback: readability})
			content, err := extractor.ExtractHTML(strings.NewReader(html), pageURL)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), content)
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "page URL used to resolve relative image sources")
	cmd.Flags().BoolVar(&readability, "readability", getenv("FEATURE_READABILITY_FALLBACK", "") == "true", "try go-readability before the cleaned body")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "fetch timeout for remote pages")

	return cmd
}
