package hnpx

import (
	"fmt"
	"strings"
)

// Rule names the schema rule a validation finding violated. Rules are
// checked in a fixed order but never short-circuit: one pass reports every
// violation in the tree.
type Rule string

const (
	RuleSingleRoot   Rule = "single-root"
	RuleUniqueID     Rule = "unique-id"
	RuleIDFormat     Rule = "id-format"
	RuleHierarchy    Rule = "hierarchy"
	RuleSummary      Rule = "summary"
	RuleText         Rule = "text"
	RuleRequiredAttr Rule = "required-attribute"
	RuleAttrValue    Rule = "attribute-value"
	RuleDialogueChar Rule = "dialogue-char"
)

// Finding is one validation violation: the offending node, the rule it
// broke, and a human-readable message.
type Finding struct {
	NodeID  string `json:"node_id"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.NodeID, f.Rule, f.Message)
}

// Validate walks the whole tree and returns every violation in check
// order. The document is valid iff the returned slice is empty.
func (d *Document) Validate() []Finding {
	var findings []Finding

	// Rule 1: exactly one root of kind book.
	if d.root == nil {
		return []Finding{{Rule: RuleSingleRoot, Message: "document has no root"}}
	}
	if d.root.Kind != KindBook {
		findings = append(findings, Finding{
			NodeID:  d.root.ID,
			Rule:    RuleSingleRoot,
			Message: fmt.Sprintf("root element must be book, got %s", d.root.Kind),
		})
	}

	// Rule 2: every node id unique (and well-formed).
	seen := make(map[string]bool)
	Walk(d.root, func(n *Node) {
		if seen[n.ID] {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleUniqueID,
				Message: fmt.Sprintf("duplicate id: %s", n.ID),
			})
		}
		seen[n.ID] = true
		if !ValidID(n.ID) {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleIDFormat,
				Message: fmt.Sprintf("id must be exactly 6 lowercase letters/digits, got %q", n.ID),
			})
		}
	})

	// Rules 3-6 are node-local given the parent link; one pre-order walk
	// covers them all.
	Walk(d.root, func(n *Node) {
		findings = append(findings, validateShape(n)...)
		findings = append(findings, validateNode(n)...)
	})

	return findings
}

// validateShape checks rule 3 for n's children: each child kind must be
// legal under n's kind.
func validateShape(n *Node) []Finding {
	var findings []Finding
	childKind, container := n.Kind.ChildKind()
	for _, c := range n.Children {
		if !container || c.Kind != childKind {
			findings = append(findings, Finding{
				NodeID:  c.ID,
				Rule:    RuleHierarchy,
				Message: fmt.Sprintf("%s cannot contain %s", n.Kind, c.Kind),
			})
		}
	}
	return findings
}

// validateNode checks rules 4-6 for a single node: summary/text presence,
// required attributes, and the dialogue-char cross-field rule.
func validateNode(n *Node) []Finding {
	var findings []Finding

	// Rule 4: containers carry exactly one non-empty summary; paragraphs
	// carry non-empty text.
	if n.Kind.IsContainer() {
		if strings.TrimSpace(n.Summary) == "" {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleSummary,
				Message: fmt.Sprintf("%s must have a non-empty summary", n.Kind),
			})
		}
	} else if strings.TrimSpace(n.Text) == "" {
		findings = append(findings, Finding{
			NodeID:  n.ID,
			Rule:    RuleText,
			Message: "paragraph has empty text content",
		})
	}

	// Rule 5: required attributes present and non-empty.
	switch n.Kind {
	case KindChapter:
		if strings.TrimSpace(n.Title) == "" {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleRequiredAttr,
				Message: "chapter missing title attribute",
			})
		}
	case KindSequence:
		if strings.TrimSpace(n.Loc) == "" {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleRequiredAttr,
				Message: "sequence missing loc attribute",
			})
		}
	case KindParagraph:
		if n.Mode != "" && !n.Mode.Valid() {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleAttrValue,
				Message: fmt.Sprintf("invalid mode %q: must be narration, dialogue, or internal", n.Mode),
			})
		}
		// Rule 6: dialogue paragraphs carry char.
		if n.EffectiveMode() == ModeDialogue && n.Char == "" {
			findings = append(findings, Finding{
				NodeID:  n.ID,
				Rule:    RuleDialogueChar,
				Message: "dialogue paragraph missing char attribute",
			})
		}
	}

	return findings
}

// validateGuard re-validates the smallest region a mutation can have
// affected: the subtree rooted at n plus node-local checks on every
// ancestor. Ancestors matter because summary-presence and required-
// attribute rules are shape-dependent.
func (d *Document) validateGuard(n *Node) []Finding {
	var findings []Finding
	Walk(n, func(m *Node) {
		findings = append(findings, validateShape(m)...)
		findings = append(findings, validateNode(m)...)
	})
	for a := n.parent; a != nil; a = a.parent {
		findings = append(findings, validateShape(a)...)
		findings = append(findings, validateNode(a)...)
	}
	return findings
}
