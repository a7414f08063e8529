package parser

import "lf2-hq/datafile/pkg/objdata/ast"

// Rule identifies the grammar rule a parse tree node was matched by.
type Rule string

const (
	RuleObject      Rule = "Object"
	RuleHeader      Rule = "Header"
	RuleSpriteFile  Rule = "SpriteFile"
	RuleFrame       Rule = "Frame"
	RuleFrameNumber Rule = "FrameNumber"
	RuleFrameName   Rule = "FrameName"
	RuleBdy         Rule = "Bdy"
	RuleBPoint      Rule = "BPoint"
	RuleCPoint      Rule = "CPoint"
	RuleItr         Rule = "Itr"
	RuleOPoint      Rule = "OPoint"
	RuleWPoint      Rule = "WPoint"
	RuleTag         Rule = "Tag"
	RuleInt         Rule = "Int"
	RuleUint        Rule = "Uint"
	RuleFloat       Rule = "Float"
	RulePath        Rule = "Path"
	RuleObjectName  Rule = "ObjectName"
)

// Node is one node of the parse tree: the rule that matched, the byte
// span it covers, and its children in source order. Tag nodes carry the
// keyword in Name; value nodes carry no children and their text is
// recovered from the span. The tree performs no semantic
// interpretation; it is a pure structural capture used for diagnostics
// and for driving the semantic mapper deterministically.
type Node struct {
	Rule     Rule
	Name     string // tag keyword for RuleTag nodes, empty otherwise
	Span     ast.Span
	Children []*Node
}

// Text returns the source text covered by the node.
func (n *Node) Text(src []byte) string {
	return n.Span.Text(src)
}

// ChildrenOf returns the node's direct children matched by the given
// rule, in source order.
func (n *Node) ChildrenOf(rule Rule) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}
