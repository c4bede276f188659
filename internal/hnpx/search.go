package hnpx

import "strings"

// Query filters nodes during a Search. Zero-value fields match anything;
// set fields must all match (conjunction). Text and summary matching is
// case-insensitive substring containment.
type Query struct {
	Kind            Kind
	Attributes      map[string]string
	TextContains    string
	SummaryContains string
}

// Search returns every node under the root matching q, in document order.
func (d *Document) Search(q Query) []*Node {
	var results []*Node
	Walk(d.root, func(n *Node) {
		if q.Kind != "" && n.Kind != q.Kind {
			return
		}
		for name, want := range q.Attributes {
			if n.attr(name) != want {
				return
			}
		}
		if q.TextContains != "" &&
			!strings.Contains(strings.ToLower(n.Text), strings.ToLower(q.TextContains)) {
			return
		}
		if q.SummaryContains != "" &&
			!strings.Contains(strings.ToLower(n.Summary), strings.ToLower(q.SummaryContains)) {
			return
		}
		results = append(results, n)
	})
	return results
}
