package hnpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Parse builds a Document from serialized HNPX text. XML syntax errors
// fail with MALFORMED_INPUT; well-formed XML that is not HNPX (wrong
// root, unknown elements or attributes, a summary on a paragraph) fails
// with NOT_HNPX. Schema violations beyond shape, such as missing attributes or
// duplicate ids, do not fail the load; they are the validation engine's
// to report.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node
	inSummary := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errMalformedInput(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if name == "summary" {
				if len(stack) == 0 {
					return nil, errNotHNPX("summary element outside a node")
				}
				owner := stack[len(stack)-1]
				if owner.Kind == KindParagraph {
					// The legacy variant put summaries on paragraphs; the
					// canonical schema does not.
					return nil, errNotHNPX("paragraph elements do not carry a summary")
				}
				if inSummary {
					return nil, errNotHNPX("nested summary element")
				}
				inSummary = true
				continue
			}

			kind := Kind(name)
			if !kind.Valid() {
				return nil, errNotHNPX("unknown element <" + name + ">")
			}
			if root == nil && kind != KindBook {
				return nil, errNotHNPX("root element must be book, got " + name)
			}
			if root != nil && len(stack) == 0 {
				return nil, errNotHNPX("multiple root elements")
			}
			if inSummary {
				return nil, errNotHNPX("element nested inside summary")
			}

			node := &Node{Kind: kind}
			for _, a := range t.Attr {
				if a.Name.Local == "id" {
					node.ID = a.Value
					continue
				}
				if !node.setAttr(a.Name.Local, a.Value) {
					return nil, errNotHNPX("unknown attribute " + a.Name.Local + " on <" + name + ">")
				}
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				node.parent = parent
				parent.Children = append(parent.Children, node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if t.Name.Local == "summary" {
				inSummary = false
				continue
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			owner := stack[len(stack)-1]
			if inSummary {
				owner.Summary += string(t)
			} else if owner.Kind == KindParagraph {
				owner.Text += string(t)
			}
			// Whitespace between container children is formatting noise.
		}
	}

	if root == nil {
		return nil, errNotHNPX("document has no root element")
	}

	d := &Document{
		root:  root,
		index: make(map[string]*Node),
		reg:   NewIDRegistry(),
	}
	Walk(root, func(n *Node) {
		n.Summary = strings.TrimSpace(n.Summary)
		n.Text = strings.TrimSpace(n.Text)
		// First occurrence wins on duplicate ids; validation reports them.
		if _, exists := d.index[n.ID]; exists {
			d.dups = true
		} else {
			d.index[n.ID] = n
		}
		d.reg.Register(n.ID)
	})
	return d, nil
}
