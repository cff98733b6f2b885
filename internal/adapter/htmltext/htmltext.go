// Package htmltext flattens HTML fragments into the plain text carried by
// webhook attachments.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// ToText returns the text content of an HTML fragment. Block elements become
// line breaks, list items get a bullet, and runs of blank lines collapse.
// Input that fails to parse is returned unchanged.
func ToText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return tidy(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "script", "style":
			return
		case "br", "p", "div":
			builder.WriteRune('\n')
		case "li":
			builder.WriteString("\n• ")
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "div" || node.Data == "ul" || node.Data == "ol") {
		builder.WriteRune('\n')
	}
}

func tidy(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
