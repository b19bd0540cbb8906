// ABOUTME: Basic example showing page summarization with the Visual Summarizer library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	summarizer "visual-summarizer-api/summarizer-lib"
)

const page = `<html><body><article>
<h1>Why tests matter</h1>
<p>Automated tests catch regressions before users do. They document intended
behavior, make refactoring safe, and shorten the feedback loop for every change
a team makes to a codebase that keeps growing.</p>
</article></body></html>`

func main() {
	// Example 1: Create a client; the API key comes from the environment
	client, err := summarizer.NewClient(
		summarizer.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
		summarizer.WithVerboseLogging(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Extract readable text without calling the model
	fmt.Println("=== Extracting ===")
	content, err := client.Extract(page, "https://example.com/tests")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Text (%d chars): %.80s...\n", len([]rune(content.Text)), content.Text)

	// Example 3: Parse and render a reply you already have
	fmt.Println("\n=== Parsing a reply ===")
	doc, _ := client.Parse(summarizer.ModeVisual, "```mindmap\nTesting\n  Benefits\n    Safety\n    Speed\n```")
	html, _ := client.RenderHTML(doc)
	fmt.Println(html)

	// Example 4: Full round trip through the model
	fmt.Println("\n=== Summarizing ===")
	snap, err := client.Summarize(context.Background(), summarizer.Page{
		URL:   "https://example.com/tests",
		Title: "Why tests matter",
		HTML:  page,
	}, summarizer.ModeTakeaways)
	if err != nil {
		log.Fatal(err)
	}
	if snap.Message != "" {
		fmt.Println("Error:", snap.Message)
		return
	}
	fmt.Println("Summary:", snap.Document.Takeaways.Summary)
	for _, p := range snap.Document.Takeaways.KeyPoints {
		fmt.Println(" -", p.Text)
	}
}
