package surrealex

import "strings"

// Direction is the orientation of a graph traversal arrow.
type Direction int

const (
	// Out follows edges away from the current record, rendered as "->".
	Out Direction = iota
	// In follows edges toward the current record, rendered as "<-".
	In
)

// arrow returns the SurrealQL arrow symbol for the direction.
func (d Direction) arrow() string {
	if d == In {
		return "<-"
	}
	return "->"
}

// GraphStep is one directed hop across a named edge.
type GraphStep struct {
	Dir  Direction
	Edge string
}

// GraphExpandParams describes a two-step graph traversal used as the
// selection of a query, e.g. "->friends<-posts.*". An empty Alias means no
// AS clause. Edge names and the alias are inserted verbatim.
type GraphExpandParams struct {
	From  GraphStep
	To    GraphStep
	Alias string
}

// render produces the traversal selection, ending in ".*" for all fields
// of the terminal node.
func (p GraphExpandParams) render() string {
	var b strings.Builder
	b.WriteString(p.From.Dir.arrow())
	b.WriteString(p.From.Edge)
	b.WriteString(p.To.Dir.arrow())
	b.WriteString(p.To.Edge)
	b.WriteString(".*")
	if p.Alias != "" {
		b.WriteString(" AS ")
		b.WriteString(p.Alias)
	}
	return b.String()
}
