package finite_test

import (
	"fmt"

	"github.com/katalvlaran/matchcheck/finite"
	"github.com/katalvlaran/matchcheck/match"
)

// ExampleNew declares a tiny vocabulary — booleans and an option-like
// type — and checks a match over it.
func ExampleNew() {
	lang := finite.New(
		finite.Enum("bool", "True", "False"),
		finite.Type("opt", finite.Ctor("None"), finite.Ctor("Some", "bool")),
	)

	// match o { None => ..., Some(True) => ... }
	pats := []match.Pat[int, string]{
		match.Zero("None", 0),
		match.Con("Some", []match.Pat[int, string]{match.Zero("True", 2)}, 1),
	}

	res, err := match.Check(lang, finite.NoCx{}, pats, "opt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range res.Missing {
		fmt.Println("missing case:", w)
	}

	// Output:
	// missing case: Some(False)
}
