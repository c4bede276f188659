package hnpx

import (
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Serialize produces the canonical text form of the document: XML
// declaration, 2-space nested indentation, attributes in canonical order
// (id first), summary as the first child of each container, paragraphs
// on a single line. Parse(Serialize(d)) is structurally equal to d for
// any valid document.
func Serialize(d *Document) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	writeNode(&b, d.root, 0)
	return []byte(b.String())
}

func writeNode(b *strings.Builder, n *Node, level int) {
	indent := strings.Repeat("  ", level)

	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(string(n.Kind))
	for _, a := range n.Attributes() {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}

	if n.Kind == KindParagraph {
		b.WriteByte('>')
		b.WriteString(escapeText(n.Text))
		b.WriteString("</paragraph>\n")
		return
	}

	b.WriteString(">\n")
	b.WriteString(indent)
	b.WriteString("  <summary>")
	b.WriteString(escapeText(n.Summary))
	b.WriteString("</summary>\n")
	for _, c := range n.Children {
		writeNode(b, c, level+1)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(string(n.Kind))
	b.WriteString(">\n")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Literal newlines and tabs in attribute values would be normalized to
// spaces on re-parse, so they go out as character references.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	"\n", "&#10;", "\t", "&#9;", "\r", "&#13;",
)

// escapeText escapes element text content. Newlines are kept literal so
// multi-paragraph summaries stay readable in the file.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
