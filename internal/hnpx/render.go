package hnpx

import (
	"fmt"
	"strings"
)

// Rendering projects the structured tree into text. Two primary shapes:
// an indented outline for planning review, and continuous prose built
// from paragraph content only. Both are strictly read-side.

// RenderOutline produces an indented textual walk of the subtree rooted
// at id: one line per node with its id, kind, and kind-specific label,
// followed by the summary, then children at increased indentation.
func (d *Document) RenderOutline(id string) (string, error) {
	node, err := d.Find(id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	renderOutline(&b, node, 0)
	return strings.TrimRight(b.String(), "\n"), nil
}

func renderOutline(b *strings.Builder, n *Node, level int) {
	indent := strings.Repeat("  ", level)

	switch n.Kind {
	case KindBook:
		fmt.Fprintf(b, "%s[%s] Book: %s\n", indent, n.ID, n.Summary)
	case KindChapter:
		pov := ""
		if n.POV != "" {
			pov = fmt.Sprintf(" (POV: %s)", n.POV)
		}
		fmt.Fprintf(b, "%s[%s] Chapter: %s%s\n", indent, n.ID, n.Title, pov)
		fmt.Fprintf(b, "%s  Summary: %s\n", indent, n.Summary)
	case KindSequence:
		label := n.Loc
		if n.Time != "" {
			label += " at " + n.Time
		}
		if n.POV != "" {
			label += fmt.Sprintf(" (POV: %s)", n.POV)
		}
		fmt.Fprintf(b, "%s[%s] Sequence: %s\n", indent, n.ID, label)
		fmt.Fprintf(b, "%s  Summary: %s\n", indent, n.Summary)
	case KindBeat:
		fmt.Fprintf(b, "%s[%s] Beat: %s\n", indent, n.ID, n.Summary)
	case KindParagraph:
		fmt.Fprintf(b, "%s[%s] %s\n", indent, n.ID, frameParagraph(n, n.Char))
	}

	for _, c := range n.Children {
		renderOutline(b, c, level+1)
	}
}

// frameParagraph applies mode-appropriate framing to a paragraph's text:
// plain for narration, quoted with attribution for dialogue, asterisk-
// marked for internal monologue. speaker is the resolved attribution (may
// be empty).
func frameParagraph(n *Node, speaker string) string {
	text := n.Text
	switch n.EffectiveMode() {
	case ModeDialogue:
		if !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
			text = `"` + text + `"`
		}
		if speaker == "" {
			return text
		}
		return speaker + ": " + text
	case ModeInternal:
		if speaker == "" {
			return "*" + text + "*"
		}
		return fmt.Sprintf("*%s (thinks): %s*", speaker, text)
	default:
		return text
	}
}

// RenderProse concatenates paragraph text in document order under
// scopeID, one blank line between paragraphs. A paragraph's effective
// speaker is its own char attribute if present, else the nearest-ancestor
// sequence's pov, else the nearest-ancestor chapter's pov, else empty
// (rendered without attribution).
func (d *Document) RenderProse(scopeID string) (string, error) {
	scope := d.root
	if scopeID != "" {
		n, err := d.Find(scopeID)
		if err != nil {
			return "", err
		}
		scope = n
	}

	var paragraphs []string
	Walk(scope, func(n *Node) {
		if n.Kind != KindParagraph {
			return
		}
		paragraphs = append(paragraphs, frameParagraph(n, resolveSpeaker(n)))
	})
	return strings.Join(paragraphs, "\n\n"), nil
}

// resolveSpeaker applies the POV inheritance chain for a paragraph:
// char → nearest sequence pov → nearest chapter pov → "".
func resolveSpeaker(n *Node) string {
	if n.Char != "" {
		return n.Char
	}
	for a := n.parent; a != nil; a = a.parent {
		if (a.Kind == KindSequence || a.Kind == KindChapter) && a.POV != "" {
			return a.POV
		}
	}
	return ""
}

// RenderMarkdown projects the whole document as hierarchical markdown:
// book summary as the title, chapters/sequences/beats as nested headings,
// paragraphs framed per mode.
func (d *Document) RenderMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", d.root.Summary)
	fmt.Fprintf(&b, "*Book ID: %s*\n\n", d.root.ID)

	for _, chapter := range d.root.Children {
		fmt.Fprintf(&b, "## %s\n", chapter.Title)
		if chapter.POV != "" {
			fmt.Fprintf(&b, "*POV: %s*\n", chapter.POV)
		}
		fmt.Fprintf(&b, "*%s*\n\n", chapter.Summary)

		for _, seq := range chapter.Children {
			heading := "**" + seq.Loc + "**"
			if seq.Time != "" {
				heading += " (" + seq.Time + ")"
			}
			if seq.POV != "" && seq.POV != chapter.POV {
				heading += " [POV: " + seq.POV + "]"
			}
			fmt.Fprintf(&b, "### %s\n*%s*\n\n", heading, seq.Summary)

			for _, beat := range seq.Children {
				fmt.Fprintf(&b, "#### %s\n\n", beat.Summary)
				for _, p := range beat.Children {
					fmt.Fprintf(&b, "%s\n\n", frameParagraph(p, resolveSpeaker(p)))
				}
			}
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
