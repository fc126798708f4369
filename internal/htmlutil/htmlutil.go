package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return whitespace.ReplaceAllString(s, " ")
}

// NormalizedText is the text content of a node with whitespace collapsed and
// trimmed, the same thing a browser would show for non-preformatted text.
func NormalizedText(node *html.Node) string {
	return strings.TrimSpace(CollapseWhitespace(GetText(node)))
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"\u00a0", "&nbsp;",
)

// RenderElement renders an element as compact html, text is whitespace
// collapsed and the content is trimmed at both ends.
//
// Unlike html.Render, quotes in text are left alone, only the characters that
// would otherwise change the meaning of the markup are escaped.
func RenderElement(node *html.Node) string {
	if node == nil {
		return ""
	}
	if node.Type != html.ElementNode {
		return strings.TrimSpace(renderString(node))
	}

	var inner strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderNode(&inner, child)
	}

	var out strings.Builder
	writeStartTag(&out, node)
	if _, void := voidElements[node.Data]; void {
		return out.String()
	}
	out.WriteString(strings.TrimSpace(inner.String()))
	writeEndTag(&out, node)
	return out.String()
}

func renderString(node *html.Node) string {
	var out strings.Builder
	renderNode(&out, node)
	return out.String()
}

func renderNode(out *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		out.WriteString(textEscaper.Replace(CollapseWhitespace(node.Data)))
	case html.ElementNode:
		writeStartTag(out, node)
		if _, void := voidElements[node.Data]; void {
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			renderNode(out, child)
		}
		writeEndTag(out, node)
	case html.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			renderNode(out, child)
		}
	}
}

func writeStartTag(out *strings.Builder, node *html.Node) {
	out.WriteByte('<')
	out.WriteString(node.Data)
	for _, attr := range node.Attr {
		out.WriteByte(' ')
		if attr.Namespace != "" {
			out.WriteString(attr.Namespace)
			out.WriteByte(':')
		}
		out.WriteString(attr.Key)
		out.WriteString(`="`)
		out.WriteString(attrEscaper.Replace(attr.Val))
		out.WriteByte('"')
	}
	out.WriteByte('>')
}

func writeEndTag(out *strings.Builder, node *html.Node) {
	out.WriteString("</")
	out.WriteString(node.Data)
	out.WriteByte('>')
}
