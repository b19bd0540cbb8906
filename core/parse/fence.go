// ABOUTME: Fenced block tokenizer for model replies
// ABOUTME: Pairs opening and closing fences explicitly instead of pattern matching

package parse

import (
	"strings"
	"unicode"
)

const fence = "```"

// Block is one fenced span of a reply
type Block struct {
	Tag  string
	Body string
}

// Blocks tokenizes reply into its fenced blocks.
// An opening fence is followed by a tag, the body runs to the next fence.
// A fence left unterminated at the end of the reply yields no block.
func Blocks(reply string) []Block {
	var blocks []Block
	rest := reply
	for {
		start := strings.Index(rest, fence)
		if start < 0 {
			return blocks
		}
		rest = rest[start+len(fence):]

		tagEnd := strings.IndexFunc(rest, func(r rune) bool {
			return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_')
		})
		if tagEnd < 0 {
			tagEnd = len(rest)
		}
		tag := rest[:tagEnd]
		rest = rest[tagEnd:]

		end := strings.Index(rest, fence)
		if end < 0 {
			return blocks
		}
		blocks = append(blocks, Block{Tag: tag, Body: rest[:end]})
		rest = rest[end+len(fence):]
	}
}
