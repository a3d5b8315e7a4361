package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func TestInterpolatedMap(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed InterpolatedMap)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-map-1.yml",
			Env: map[string]string{
				"TEST_PROP1":      "foo",
				"TEST_SUB_PROP1":  "bar",
				"TEST_SUB2_PROP1": "baz",
			},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "foo", parsed.Data["prop1"]; e != g {
					t.Errorf("parsed.Data[\"prop1\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "bar", parsed.Data["sub"].(map[string]any)["subProp1"]; e != g {
					t.Errorf("parsed.Data[\"sub\"][\"subProp1\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "baz", parsed.Data["sub2"].(map[string]any)["sub2Prop1"].([]any)[0]; e != g {
					t.Errorf("parsed.Data[\"sub2\"][\"sub2Prop1\"][0]: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-map-2.yml",
			Env: map[string]string{
				"CATALOG_HOST": "catalog.example.org",
			},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "https://catalog.example.org/search", parsed.Data["url"]; e != g {
					t.Errorf("parsed.Data[\"url\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "q", parsed.Data["param"]; e != g {
					t.Errorf("parsed.Data[\"param\"]: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			var interpolatedMap InterpolatedMap

			if tc.Env != nil {
				getEnv = func(key string) string {
					return tc.Env[key]
				}
			}

			if err := yaml.Unmarshal(data, &interpolatedMap); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, interpolatedMap)
			}
		})
	}
}

func TestInterpolatedScalars(t *testing.T) {
	getEnv = func(key string) string {
		return map[string]string{
			"PENDING_FINES": "4",
			"RATE":          "0.5",
			"SECURE":        "true",
			"KEY":           "secret",
		}[key]
	}

	data, err := os.ReadFile("testdata/environment/interpolated-scalars.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	parsed := struct {
		PendingFines InterpolatedInt         `yaml:"pendingFines"`
		Rate         InterpolatedFloat       `yaml:"rate"`
		Secure       InterpolatedBool        `yaml:"secure"`
		Locale       InterpolatedString      `yaml:"locale"`
		Keys         InterpolatedStringSlice `yaml:"keys"`
	}{}

	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, int(parsed.PendingFines); e != g {
		t.Errorf("parsed.PendingFines: expected '%v', got '%v'", e, g)
	}

	if e, g := 0.5, float64(parsed.Rate); e != g {
		t.Errorf("parsed.Rate: expected '%v', got '%v'", e, g)
	}

	if !bool(parsed.Secure) {
		t.Errorf("parsed.Secure: expected 'true', got 'false'")
	}

	if e, g := "en-US", string(parsed.Locale); e != g {
		t.Errorf("parsed.Locale: expected '%v', got '%v'", e, g)
	}

	if e, g := "secret", parsed.Keys[0]; len(parsed.Keys) != 1 || e != g {
		t.Errorf("parsed.Keys: expected '[%v]', got '%v'", e, parsed.Keys)
	}
}

func TestInterpolatedIntInvalid(t *testing.T) {
	getEnv = func(key string) string {
		return "three"
	}

	parsed := struct {
		PendingFines InterpolatedInt `yaml:"pendingFines"`
	}{}

	if err := yaml.Unmarshal([]byte("pendingFines: ${PENDING_FINES}"), &parsed); err == nil {
		t.Errorf("expected an error, got nil")
	}
}
