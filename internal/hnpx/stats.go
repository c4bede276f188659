package hnpx

import (
	"sort"
	"strings"
)

// Stats summarizes a document: element counts per kind, word totals,
// narrative-mode tallies, the set of POV characters, and the maximum
// depth below the book root.
type Stats struct {
	TotalElements int          `json:"total_elements"`
	ElementCounts map[Kind]int `json:"element_counts"`
	TotalWords    int          `json:"total_words"`
	MaxDepth      int          `json:"max_depth"`
	POVCharacters []string     `json:"pov_characters"`
	NarrativeMode map[Mode]int `json:"narrative_modes"`
}

// ComputeStats walks the whole tree once and aggregates the counters.
func (d *Document) ComputeStats() Stats {
	s := Stats{
		ElementCounts: map[Kind]int{},
		NarrativeMode: map[Mode]int{ModeNarration: 0, ModeDialogue: 0, ModeInternal: 0},
	}
	povs := map[string]bool{}

	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		s.TotalElements++
		s.ElementCounts[n.Kind]++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if n.POV != "" {
			povs[n.POV] = true
		}
		if n.Kind == KindParagraph {
			s.TotalWords += len(strings.Fields(n.Text))
			s.NarrativeMode[n.EffectiveMode()]++
			if n.Char != "" {
				povs[n.Char] = true
			}
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	visit(d.root, 0)

	for pov := range povs {
		s.POVCharacters = append(s.POVCharacters, pov)
	}
	sort.Strings(s.POVCharacters)
	return s
}
