package dom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"unicode"
)

// Parse reads one XML part into a mutable Document.
//
// The standard decoder resolves namespace prefixes to their URIs and drops the
// prefixes themselves, but package parts must be rewritten with the exact
// qualified names they were authored with ("w:bookmarkStart", "w15:paraId").
// Parse therefore tracks the xmlns declarations in scope and reconstructs each
// name's original prefix. Reconstruction assumes a prefix binds a single URI
// at a time, which holds for WordprocessingML parts; the predeclared xml:
// prefix and other well-known bindings are resolved through wellKnownPrefixes.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{dec: xml.NewDecoder(r)}
	return p.parse()
}

// ParseBytes parses an in-memory XML part.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// nsBinding is one xmlns declaration; prefix is empty for a default namespace.
type nsBinding struct {
	prefix string
	uri    string
}

type parser struct {
	dec    *xml.Decoder
	scopes [][]nsBinding
}

func (p *parser) parse() (*Document, error) {
	doc := &Document{}
	var stack []*Node
	rootClosed := false

	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			frame := make([]nsBinding, 0, 2)
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "xmlns":
					frame = append(frame, nsBinding{prefix: a.Name.Local, uri: a.Value})
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					frame = append(frame, nsBinding{prefix: "", uri: a.Value})
				}
			}
			p.scopes = append(p.scopes, frame)

			el := &Node{Type: ElementNode, Tag: p.qualify(t.Name, false)}
			if len(t.Attr) > 0 {
				el.Attrs = make([]Attr, 0, len(t.Attr))
				for _, a := range t.Attr {
					el.Attrs = append(el.Attrs, Attr{Name: p.qualify(a.Name, true), Value: a.Value})
				}
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(el)
			} else {
				doc.Root = el
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				p.scopes = p.scopes[:len(p.scopes)-1]
				if len(stack) == 0 {
					rootClosed = true
				}
			}

		case xml.CharData:
			data := string(t)
			if len(stack) == 0 {
				if !isOutsideRootWhitespace(data) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				appendMisc(doc, rootClosed, &Node{Type: TextNode, Data: data})
				continue
			}
			parent := stack[len(stack)-1]
			if n := len(parent.Children); n > 0 && parent.Children[n-1].Type == TextNode {
				parent.Children[n-1].Data += data
				continue
			}
			parent.AppendChild(&Node{Type: TextNode, Data: data})

		case xml.Comment:
			node := &Node{Type: CommentNode, Data: string(t)}
			if len(stack) == 0 {
				appendMisc(doc, rootClosed, node)
				continue
			}
			stack[len(stack)-1].AppendChild(node)

		case xml.ProcInst:
			if t.Target == "xml" && doc.Root == nil && doc.Decl == "" {
				doc.Decl = "<?xml " + string(t.Inst) + "?>"
				continue
			}
			node := &Node{Type: ProcInstNode, Target: t.Target, Data: string(t.Inst)}
			if len(stack) == 0 {
				appendMisc(doc, rootClosed, node)
				continue
			}
			stack[len(stack)-1].AppendChild(node)

		case xml.Directive:
			node := &Node{Type: DirectiveNode, Data: string(t)}
			if len(stack) == 0 {
				appendMisc(doc, rootClosed, node)
				continue
			}
			stack[len(stack)-1].AppendChild(node)
		}
	}

	if doc.Root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return doc, nil
}

// appendMisc records a node that lives outside the root element.
func appendMisc(doc *Document, rootClosed bool, n *Node) {
	if rootClosed {
		doc.Epilog = append(doc.Epilog, n)
	} else {
		doc.Prolog = append(doc.Prolog, n)
	}
}

// qualify rebuilds the qualified name the source used for an element or
// attribute name that the decoder has already translated.
func (p *parser) qualify(n xml.Name, isAttr bool) string {
	switch {
	case n.Space == "":
		// Plain names, including a default "xmlns" declaration.
		return n.Local
	case n.Space == "xmlns":
		return "xmlns:" + n.Local
	}
	if prefix, ok := p.prefixFor(n.Space, isAttr); ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	if prefix, ok := wellKnownPrefixes[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	// The decoder passes prefixes with no in-scope declaration through
	// verbatim, so Space already holds the original prefix.
	return n.Space + ":" + n.Local
}

// prefixFor returns the in-scope prefix bound to uri. Attributes never take a
// default namespace, so needPrefixed skips default bindings for them.
func (p *parser) prefixFor(uri string, needPrefixed bool) (string, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		for _, b := range p.scopes[i] {
			if b.uri != uri {
				continue
			}
			if needPrefixed && b.prefix == "" {
				continue
			}
			if p.resolve(b.prefix) == uri {
				return b.prefix, true
			}
		}
	}
	return "", false
}

// resolve returns the URI a prefix currently binds to, honoring shadowing.
func (p *parser) resolve(prefix string) string {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		frame := p.scopes[i]
		for j := len(frame) - 1; j >= 0; j-- {
			if frame[j].prefix == prefix {
				return frame[j].uri
			}
		}
	}
	return ""
}

// isOutsideRootWhitespace reports whether character data found outside the
// root element is ignorable (whitespace or a BOM).
func isOutsideRootWhitespace(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
