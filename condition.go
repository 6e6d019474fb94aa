package surrealex

import "strings"

// conditionKind tags the variant held by a Condition.
type conditionKind int

const (
	kindSimple conditionKind = iota
	kindAnd
	kindOr
)

// Condition is a boolean expression tree for WHERE clauses.
//
// A Condition is either a simple fragment rendered verbatim, or an AND/OR
// group over sub-conditions. A group with more than one member is
// parenthesized when rendered, so mixing AND and OR at different levels of
// nesting never changes meaning.
type Condition struct {
	kind  conditionKind
	text  string
	items []Condition
}

// Simple creates a condition from a raw fragment such as "age > 18".
// The fragment is not parsed or escaped.
func Simple(text string) Condition {
	return Condition{kind: kindSimple, text: text}
}

// And creates a condition that joins its sub-conditions with AND.
func And(conds ...Condition) Condition {
	return Condition{kind: kindAnd, items: conds}
}

// Or creates a condition that joins its sub-conditions with OR.
func Or(conds ...Condition) Condition {
	return Condition{kind: kindOr, items: conds}
}

// String renders the condition tree. A group with no members renders as
// the empty string.
func (c Condition) String() string {
	switch c.kind {
	case kindAnd:
		return renderGroup(c.items, " AND ")
	case kindOr:
		return renderGroup(c.items, " OR ")
	default:
		return c.text
	}
}

// renderGroup joins rendered members, wrapping the result in parentheses
// only when the group has more than one member. A single member renders
// without the redundant parens.
func renderGroup(items []Condition, sep string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0].String()
	}

	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = item.String()
	}
	return "(" + strings.Join(rendered, sep) + ")"
}
