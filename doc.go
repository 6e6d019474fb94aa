// Package surrealex provides a query builder for SurrealQL query strings.
//
// This package allows you to construct SurrealQL queries programmatically
// with a fluent interface, instead of concatenating strings by hand.
//
// The central type is [QueryBuilder], which accumulates the clauses of a
// SELECT statement and renders them in a fixed order with [QueryBuilder.Build]:
//
//	sql, err := surrealex.New().
//	    Select("id, name").
//	    From("user").
//	    AddWhere("age > 18").
//	    OrderBy("age DESC").
//	    Limit(10).
//	    Build()
//	// SELECT id, name FROM user WHERE age > 18 ORDER BY age DESC LIMIT 10
//
// WHERE clauses are modelled as a [Condition] tree built from [Simple]
// fragments grouped with [And] and [Or]. Fragments are inserted verbatim:
// the builder never parses, validates, or escapes SurrealQL, and it never
// executes the produced string against a database.
//
// Graph traversals across two edges are described with [GraphExpandParams]
// and rendered into arrow syntax in the selection clause via
// [QueryBuilder.GraphTraverse].
//
// [ScriptBuilder] and [TransactionBuilder] compose multi-statement scripts
// (LET assignments with a final RETURN object, and BEGIN/COMMIT/CANCEL
// transaction blocks) out of raw statements and built queries.
package surrealex
