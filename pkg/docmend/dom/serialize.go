package dom

import (
	"strings"
)

// Escaping matches what package consumers produce for these parts: bare
// minimum entity replacement in text, plus character references for tab,
// newline and carriage return in attribute values, which a parser would
// otherwise normalize to spaces on the next read.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#09;", "\n", "&#10;", "\r", "&#13;",
	)
)

// String serializes the document back to XML text. Untouched regions keep
// their qualified names, attribute order and text verbatim; empty elements
// are written self-closing.
func (d *Document) String() string {
	var sb strings.Builder
	if d.Decl != "" {
		sb.WriteString(d.Decl)
	}
	for _, n := range d.Prolog {
		writeNode(&sb, n)
	}
	if d.Root != nil {
		writeNode(&sb, d.Root)
	}
	for _, n := range d.Epilog {
		writeNode(&sb, n)
	}
	return sb.String()
}

// Bytes serializes the document for writing back to storage.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

func writeNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Tag)
		for _, a := range n.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			attrEscaper.WriteString(sb, a.Value)
			sb.WriteByte('"')
		}
		if len(n.Children) == 0 {
			sb.WriteString("/>")
			return
		}
		sb.WriteByte('>')
		for _, c := range n.Children {
			writeNode(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.Tag)
		sb.WriteByte('>')
	case TextNode:
		textEscaper.WriteString(sb, n.Data)
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case ProcInstNode:
		sb.WriteString("<?")
		sb.WriteString(n.Target)
		if n.Data != "" {
			sb.WriteByte(' ')
			sb.WriteString(n.Data)
		}
		sb.WriteString("?>")
	case DirectiveNode:
		sb.WriteString("<!")
		sb.WriteString(n.Data)
		sb.WriteByte('>')
	}
}
