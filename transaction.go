package surrealex

import "strings"

// TransactionBuilder composes a SurrealQL transaction script. Call Begin
// first, add statements, then Commit to finalize or Cancel to roll back,
// and Build to get the script text.
type TransactionBuilder struct {
	statements []string
}

// NewTransaction creates an empty transaction builder.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{}
}

// Begin appends the BEGIN TRANSACTION statement.
func (t *TransactionBuilder) Begin() *TransactionBuilder {
	t.statements = append(t.statements, "BEGIN TRANSACTION;")
	return t
}

// Statement appends a raw statement, trimming surrounding whitespace and
// terminating it with a semicolon when one is missing.
func (t *TransactionBuilder) Statement(stmt string) *TransactionBuilder {
	s := strings.TrimSpace(stmt)
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	t.statements = append(t.statements, s)
	return t
}

// Query builds q and appends the result as a statement. The builder is
// left unchanged when q cannot be built.
func (t *TransactionBuilder) Query(q *QueryBuilder) (*TransactionBuilder, error) {
	sql, err := q.Build()
	if err != nil {
		return t, err
	}
	return t.Statement(sql), nil
}

// QuerySuffixed builds q and appends it parenthesized with a suffix
// applied, e.g. a suffix of "[0].count" yields (SELECT ...)[0].count;
func (t *TransactionBuilder) QuerySuffixed(q *QueryBuilder, suffix string) (*TransactionBuilder, error) {
	sql, err := q.Build()
	if err != nil {
		return t, err
	}
	return t.Statement("(" + sql + ")" + suffix), nil
}

// Script appends a prebuilt script verbatim; it may span multiple lines
// and carries its own semicolons.
func (t *TransactionBuilder) Script(script string) *TransactionBuilder {
	t.statements = append(t.statements, script)
	return t
}

// Commit appends the COMMIT TRANSACTION statement.
func (t *TransactionBuilder) Commit() *TransactionBuilder {
	t.statements = append(t.statements, "COMMIT TRANSACTION;")
	return t
}

// Cancel appends the CANCEL TRANSACTION statement, rolling the
// transaction back.
func (t *TransactionBuilder) Cancel() *TransactionBuilder {
	t.statements = append(t.statements, "CANCEL TRANSACTION;")
	return t
}

// Build joins the statements with newlines.
func (t *TransactionBuilder) Build() string {
	return strings.Join(t.statements, "\n")
}
