package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/belote/internal/config"
)

const classicTables = `
[scoring.normal]
seven = 0
eight = 0
nine = 0
ten = 10
jack = 2
queen = 3
king = 4
ace = 11

[scoring.trump]
seven = 0
eight = 0
nine = 14
ten = 10
jack = 20
queen = 3
king = 4
ace = 11
`

const header = `
name = "classic"
version = "1.0.0"
schema_version = "1.0"
`

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	return path
}

func contains(list []string, fragment string) bool {
	for _, s := range list {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name         string
		body         string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name: "classic rules",
			body: header + "deal = [3, 2, 3]\nlast_trick_bonus = 10\npost_play_delay = 1.0\n" + classicTables,
		},
		{
			name:       "missing header fields",
			body:       "deal = [3, 2, 3]\n" + classicTables,
			wantErrors: []string{"name is required", "version is required", "schema_version is required"},
		},
		{
			name:       "unsupported schema",
			body:       "name = \"x\"\nversion = \"1\"\nschema_version = \"2.0\"\ndeal = [3, 2, 3]\n" + classicTables,
			wantErrors: []string{"unsupported schema_version"},
		},
		{
			name:       "deal over-allocates",
			body:       header + "deal = [3, 3, 3]\n" + classicTables,
			wantErrors: []string{"needs 36 cards"},
		},
		{
			name:         "deal under-allocates",
			body:         header + "deal = [3, 2, 2]\n" + classicTables,
			wantWarnings: []string{"leaves 4 cards"},
		},
		{
			name:       "non-positive block",
			body:       header + "deal = [3, 0, 5]\n" + classicTables,
			wantErrors: []string{"deal[1] must be positive"},
		},
		{
			name:         "tables omitted",
			body:         header + "deal = [3, 2, 3]\n",
			wantWarnings: []string{"scoring.normal not set", "scoring.trump not set"},
		},
		{
			name: "bad ranks",
			body: header + "deal = [3, 2, 3]\n" + strings.Replace(
				strings.Replace(classicTables, "seven = 0\n", "joker = 5\n", 1),
				"ace = 11\n", "ace = -11\n", 1),
			wantErrors: []string{`unknown rank "joker"`, "missing rank seven", "scoring.normal.ace must not be negative"},
		},
		{
			name:       "unknown key",
			body:       header + "deal = [3, 2, 3]\ntrumps = 4\n" + classicTables,
			wantErrors: []string{"unknown key: trumps"},
		},
		{
			name:         "timing",
			body:         header + "deal = [3, 2, 3]\npost_play_delay = -1.0\nlast_trick_bonus = 20\n" + classicTables,
			wantErrors:   []string{"post_play_delay must not be negative"},
			wantWarnings: []string{"classic belote uses 10"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NewValidator(writeRules(t, c.body))
			results, err := v.Validate()
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
			if len(c.wantErrors) == 0 && len(results.Errors) != 0 {
				t.Fatalf("unexpected errors: %v", results.Errors)
			}
			for _, want := range c.wantErrors {
				if !contains(results.Errors, want) {
					t.Errorf("missing error %q in %v", want, results.Errors)
				}
			}
			for _, want := range c.wantWarnings {
				if !contains(results.Warnings, want) {
					t.Errorf("missing warning %q in %v", want, results.Warnings)
				}
			}
		})
	}
}

func TestValidateWrittenClassicRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.toml")
	if err := config.WriteRules(path, config.ClassicRules()); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Fatalf("classic rules should be clean: %+v", results)
	}
}

func TestValidateUnreadableFile(t *testing.T) {
	if _, err := NewValidator(filepath.Join(t.TempDir(), "none.toml")).Validate(); err == nil {
		t.Fatalf("missing file should fail")
	}
	path := writeRules(t, "name = [")
	if _, err := NewValidator(path).Validate(); err == nil {
		t.Fatalf("malformed file should fail")
	}
}
