package surrealex

import "strings"

// ReturnEntry is one key/value pair of a script's RETURN object. The value
// is inserted verbatim, so it may reference LET variables such as "$items"
// or carry an expression.
type ReturnEntry struct {
	Key   string
	Value string
}

// ScriptBuilder composes a SurrealQL script of LET assignments followed by
// a final RETURN object.
//
//	sb := surrealex.NewScript()
//	sb.LetQuery("widgets", surrealex.New().From("widget").AddWhere("active = true"))
//	sb.Return(surrealex.ReturnEntry{Key: "items", Value: "$widgets"})
//	script, err := sb.Build()
type ScriptBuilder struct {
	statements []string
	returns    []ReturnEntry
}

// NewScript creates an empty script builder.
func NewScript() *ScriptBuilder {
	return &ScriptBuilder{}
}

// LetRaw appends a LET assignment with the expression wrapped in
// parentheses: LET $name = (expr);
func (s *ScriptBuilder) LetRaw(name, expr string) *ScriptBuilder {
	s.statements = append(s.statements, "LET $"+name+" = ("+expr+");")
	return s
}

// LetRawSuffixed appends a LET assignment with a suffix applied outside
// the parentheses, for indexing or field access. A suffix of "[0].count"
// yields LET $name = (expr)[0].count;
func (s *ScriptBuilder) LetRawSuffixed(name, expr, suffix string) *ScriptBuilder {
	s.statements = append(s.statements, "LET $"+name+" = ("+expr+")"+suffix+";")
	return s
}

// LetQuery builds q and appends the result as a LET assignment. The
// builder is left unchanged when q cannot be built.
func (s *ScriptBuilder) LetQuery(name string, q *QueryBuilder) (*ScriptBuilder, error) {
	sql, err := q.Build()
	if err != nil {
		return s, err
	}
	return s.LetRaw(name, sql), nil
}

// LetQuerySuffixed is LetQuery with a suffix applied outside the
// parenthesized query.
func (s *ScriptBuilder) LetQuerySuffixed(name string, q *QueryBuilder, suffix string) (*ScriptBuilder, error) {
	sql, err := q.Build()
	if err != nil {
		return s, err
	}
	return s.LetRawSuffixed(name, sql, suffix), nil
}

// Return sets the entries of the RETURN object, replacing any previous
// mapping. Entries render in the given order.
func (s *ScriptBuilder) Return(entries ...ReturnEntry) *ScriptBuilder {
	s.returns = entries
	return s
}

// Build renders the script: each LET statement on its own line, ending
// with the RETURN object. It returns ErrMissingReturn when no return
// entries were provided.
func (s *ScriptBuilder) Build() (string, error) {
	if len(s.returns) == 0 {
		return "", ErrMissingReturn
	}

	var b strings.Builder
	for _, stmt := range s.statements {
		b.WriteString(stmt)
		b.WriteByte('\n')
	}

	b.WriteString("RETURN { ")
	pairs := make([]string, len(s.returns))
	for i, e := range s.returns {
		pairs[i] = e.Key + ": " + e.Value
	}
	b.WriteString(strings.Join(pairs, ", "))
	b.WriteString(" }")
	return b.String(), nil
}
