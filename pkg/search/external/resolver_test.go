package external

import (
	"fmt"
	"testing"

	"github.com/bornholm/libraryms/pkg/search"
	"github.com/pkg/errors"
)

func TestResolver(t *testing.T) {
	type testCase struct {
		Options     map[string]any
		Query       string
		Expected    string
		ExpectError bool
	}

	testCases := []testCase{
		{
			Options:  map[string]any{"url": "https://catalog.example.org/search"},
			Query:    "dune",
			Expected: "https://catalog.example.org/search?q=dune",
		},
		{
			Options:  map[string]any{"url": "https://catalog.example.org/find?lang=en", "param": "title"},
			Query:    "solaris",
			Expected: "https://catalog.example.org/find?lang=en&title=solaris",
		},
		{
			Options:     map[string]any{"url": "javascript:alert(1)"},
			ExpectError: true,
		},
		{
			Options:     map[string]any{"url": "https://catalog.example.org", "unknown": true},
			ExpectError: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			resolver, err := search.New(Type, tc.Options)
			if tc.ExpectError {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			resultsURL, err := resolver.ResultsURL(tc.Query)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, resultsURL; e != g {
				t.Errorf("resultsURL: expected '%v', got '%v'", e, g)
			}
		})
	}
}
