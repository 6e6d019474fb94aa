package surrealex

import (
	"strconv"
	"strings"
)

// QueryBuilder accumulates the clauses of a single SELECT query.
//
// Methods may be called in any order; Build always renders the clauses as
// SELECT, FROM, WHERE, FETCH, ORDER BY, LIMIT, START. Build only reads the
// accumulated state, so a builder can be rendered more than once.
//
// A QueryBuilder is not safe for concurrent use; it is meant to be owned
// by one caller through its chain of method calls.
type QueryBuilder struct {
	selectExpr string
	table      string
	condition  *Condition
	fetchExpr  string
	orderExpr  string
	limitVal   *int
	startVal   *int
	graph      *GraphExpandParams
}

// New creates an empty query builder, defaulting to SELECT *.
func New() *QueryBuilder {
	return &QueryBuilder{}
}

// Select sets the selection field list, e.g. "id, name".
func (q *QueryBuilder) Select(fields string) *QueryBuilder {
	q.selectExpr = fields
	return q
}

// From sets the FROM target. This is the only clause Build requires.
func (q *QueryBuilder) From(table string) *QueryBuilder {
	q.table = table
	return q
}

// AddWhere adds a raw condition fragment to the WHERE clause. It is
// shorthand for AddCondition(Simple(fragment)).
func (q *QueryBuilder) AddWhere(fragment string) *QueryBuilder {
	return q.AddCondition(Simple(fragment))
}

// AddCondition adds a condition tree to the WHERE clause. Each subsequent
// call is combined with the existing condition under a new AND group, so
// calls compose and their order relative to other clauses does not matter.
func (q *QueryBuilder) AddCondition(c Condition) *QueryBuilder {
	if q.condition == nil {
		q.condition = &c
		return q
	}
	combined := And(*q.condition, c)
	q.condition = &combined
	return q
}

// Fetch sets the FETCH field list.
func (q *QueryBuilder) Fetch(fields string) *QueryBuilder {
	q.fetchExpr = fields
	return q
}

// OrderBy sets the ORDER BY expression, e.g. "age DESC".
func (q *QueryBuilder) OrderBy(expr string) *QueryBuilder {
	q.orderExpr = expr
	return q
}

// Limit sets the LIMIT clause.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limitVal = &n
	return q
}

// Start sets the START clause.
func (q *QueryBuilder) Start(n int) *QueryBuilder {
	q.startVal = &n
	return q
}

// GraphTraverse sets a two-step graph traversal as the selection. The
// traversal replaces any field list set with Select.
func (q *QueryBuilder) GraphTraverse(p GraphExpandParams) *QueryBuilder {
	q.graph = &p
	return q
}

// selection resolves the text following SELECT: the graph traversal when
// set, else the explicit field list, else "*".
func (q *QueryBuilder) selection() string {
	if q.graph != nil {
		return q.graph.render()
	}
	if q.selectExpr != "" {
		return q.selectExpr
	}
	return "*"
}

// Build renders the accumulated clauses into a single query string.
// It returns ErrMissingTarget when no FROM target was set; all other
// clauses are optional.
func (q *QueryBuilder) Build() (string, error) {
	if q.table == "" {
		return "", ErrMissingTarget
	}

	parts := []string{
		"SELECT " + q.selection(),
		"FROM " + q.table,
	}

	if q.condition != nil {
		if where := q.condition.String(); where != "" {
			parts = append(parts, "WHERE "+where)
		}
	}
	if q.fetchExpr != "" {
		parts = append(parts, "FETCH "+q.fetchExpr)
	}
	if q.orderExpr != "" {
		parts = append(parts, "ORDER BY "+q.orderExpr)
	}
	if q.limitVal != nil {
		parts = append(parts, "LIMIT "+strconv.Itoa(*q.limitVal))
	}
	if q.startVal != nil {
		parts = append(parts, "START "+strconv.Itoa(*q.startVal))
	}

	return strings.Join(parts, " "), nil
}
