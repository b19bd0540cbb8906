// ABOUTME: Display-ready node tree emitted by the renderers
// ABOUTME: Pure data with an HTML serializer; mounting it into a live page is the shell's job

package render

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// VisualNode is one element of the rendered panel
type VisualNode struct {
	Tag      string            `json:"tag"`
	Class    string            `json:"class,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []VisualNode      `json:"children,omitempty"`
}

func el(tag, class string, children ...VisualNode) VisualNode {
	return VisualNode{Tag: tag, Class: class, Children: children}
}

func textEl(tag, class, text string) VisualNode {
	return VisualNode{Tag: tag, Class: class, Text: text}
}

func (n VisualNode) with(key, value string) VisualNode {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}

// Find returns the first node in depth-first order whose class list contains class
func (n VisualNode) Find(class string) (VisualNode, bool) {
	if hasClass(n.Class, class) {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(class); ok {
			return found, true
		}
	}
	return VisualNode{}, false
}

// FindAll returns every node whose class list contains class
func (n VisualNode) FindAll(class string) []VisualNode {
	var found []VisualNode
	if hasClass(n.Class, class) {
		found = append(found, n)
	}
	for _, c := range n.Children {
		found = append(found, c.FindAll(class)...)
	}
	return found
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

// HTML serializes the tree with all text and attributes escaped
func HTML(nodes ...VisualNode) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, toHTMLNode(n)); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func toHTMLNode(n VisualNode) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}

	if n.Text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		node.AppendChild(toHTMLNode(c))
	}
	return node
}
