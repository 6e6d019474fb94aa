package surrealex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionBuilderCommit(t *testing.T) {
	tx := NewTransaction().
		Begin().
		Statement("CREATE widget:one SET value = 100").
		Statement("UPDATE widget:one SET value += 10;").
		Commit()

	want := "BEGIN TRANSACTION;\n" +
		"CREATE widget:one SET value = 100;\n" +
		"UPDATE widget:one SET value += 10;\n" +
		"COMMIT TRANSACTION;"
	assert.Equal(t, want, tx.Build())
}

func TestTransactionBuilderCancel(t *testing.T) {
	tx := NewTransaction().
		Begin().
		Statement("UPDATE widget:one SET value -= 200").
		Cancel()

	want := "BEGIN TRANSACTION;\n" +
		"UPDATE widget:one SET value -= 200;\n" +
		"CANCEL TRANSACTION;"
	assert.Equal(t, want, tx.Build())
}

func TestTransactionBuilderQueries(t *testing.T) {
	tx := NewTransaction().Begin()

	_, err := tx.Query(New().From("widget"))
	require.NoError(t, err)
	_, err = tx.QuerySuffixed(New().Select("count()").From("widget"), "[0].count")
	require.NoError(t, err)
	tx.Commit()

	want := "BEGIN TRANSACTION;\n" +
		"SELECT * FROM widget;\n" +
		"(SELECT count() FROM widget)[0].count;\n" +
		"COMMIT TRANSACTION;"
	assert.Equal(t, want, tx.Build())
}

func TestTransactionBuilderPropagatesQueryError(t *testing.T) {
	tx := NewTransaction().Begin()

	_, err := tx.Query(New())
	require.ErrorIs(t, err, ErrMissingTarget)

	tx.Commit()
	assert.Equal(t, "BEGIN TRANSACTION;\nCOMMIT TRANSACTION;", tx.Build())
}

func TestTransactionBuilderScript(t *testing.T) {
	script, err := NewScript().
		LetRaw("count", "SELECT count() FROM widget").
		Return(ReturnEntry{Key: "count", Value: "$count"}).
		Build()
	require.NoError(t, err)

	tx := NewTransaction().Begin().Script(script).Commit()

	want := "BEGIN TRANSACTION;\n" +
		"LET $count = (SELECT count() FROM widget);\n" +
		"RETURN { count: $count }\n" +
		"COMMIT TRANSACTION;"
	assert.Equal(t, want, tx.Build())
}
