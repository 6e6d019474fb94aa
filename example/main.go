package main

import (
	"os"

	surrealex "github.com/MordechaiHadad/surrealex"
	"github.com/MordechaiHadad/surrealex/pkg/logger"
)

func main() {
	log, err := logger.New().ToWriter(os.Stdout).Make()
	if err != nil {
		panic(err)
	}

	// A plain selection with filtering, ordering and paging.
	adults, err := surrealex.New().
		Select("id, name").
		From("user").
		AddWhere("age > 18").
		OrderBy("age DESC").
		Limit(10).
		Build()
	if err != nil {
		panic(err)
	}
	log.Query("adults", adults)

	// A two-step graph traversal replacing the selection clause.
	friendPosts, err := surrealex.New().
		From("user").
		GraphTraverse(surrealex.GraphExpandParams{
			From:  surrealex.GraphStep{Dir: surrealex.Out, Edge: "friends"},
			To:    surrealex.GraphStep{Dir: surrealex.In, Edge: "posts"},
			Alias: "friend_posts",
		}).
		Build()
	if err != nil {
		panic(err)
	}
	log.Query("friend_posts", friendPosts)

	// A LET/RETURN script combining two built queries.
	list := surrealex.New().From("widget").AddWhere(`status != "archived"`)
	count := surrealex.New().Select("count()").From("widget").AddWhere(`status != "archived"`)

	sb := surrealex.NewScript()
	if _, err := sb.LetQuery("widget_list", list); err != nil {
		panic(err)
	}
	if _, err := sb.LetQuerySuffixed("widget_count", count, "[0].count"); err != nil {
		panic(err)
	}
	script, err := sb.Return(
		surrealex.ReturnEntry{Key: "widgets", Value: "$widget_list"},
		surrealex.ReturnEntry{Key: "count", Value: "$widget_count"},
	).Build()
	if err != nil {
		panic(err)
	}
	log.Query("widget_report", script)

	// A transaction block built from raw statements.
	tx := surrealex.NewTransaction().
		Begin().
		Statement("CREATE widget:one SET value = 100").
		Statement("UPDATE widget:one SET value += 10").
		Commit()
	log.Query("provision", tx.Build())
}
