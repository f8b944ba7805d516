package api

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// markdownToHTML converts a generated markdown document to an HTML fragment.
// The GFM extension covers the field tables.
func markdownToHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// markdownToText flattens a generated document to plain text by rendering it
// to HTML and extracting the text content.
func markdownToText(src []byte) (string, error) {
	rendered, err := markdownToHTML(src)
	if err != nil {
		return "", err
	}
	doc, err := html.Parse(bytes.NewReader(rendered))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		// Block elements get a trailing newline so sections stay separated.
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "table":
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)
	return strings.TrimSpace(buf.String()) + "\n", nil
}
