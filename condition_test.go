package surrealex

import "testing"

func TestConditionString(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{"simple fragment", Simple("age > 18"), "age > 18"},
		{"empty fragment", Simple(""), ""},
		{"empty and group", And(), ""},
		{"empty or group", Or(), ""},
		{"single child and", And(Simple("x")), "x"},
		{"single child or", Or(Simple("x")), "x"},
		{"flat and", And(Simple("a"), Simple("b")), "(a AND b)"},
		{"flat or", Or(Simple("a"), Simple("b"), Simple("c")), "(a OR b OR c)"},
		{
			"or nested in and",
			And(Simple("age > 18"), Or(Simple("status = 'active'"), Simple("status = 'pending'"))),
			"(age > 18 AND (status = 'active' OR status = 'pending'))",
		},
		{
			"single child group keeps inner parens only",
			And(Or(Simple("a"), Simple("b"))),
			"(a OR b)",
		},
		{
			"groups nested on both sides",
			Or(And(Simple("a"), Simple("b")), And(Simple("c"), Simple("d"))),
			"((a AND b) OR (c AND d))",
		},
		{
			"three levels",
			And(Simple("a"), Or(Simple("b"), And(Simple("c"), Simple("d")))),
			"(a AND (b OR (c AND d)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
