package e2etests

import (
	"os"
	"path/filepath"
	"strings"
)

// testCases is the ordered registry of all e2e test cases.
var testCases = []TestCase{
	{"01_set_get", caseSetGet, `=== set ===
Set count = 15
Set tags = ['a', 'b']

=== get count ===
15

=== get tags json ===
{"section":"main","key":"tags","value":["a","b"]}

=== get missing ===
EXIT_CODE: 1

=== get default ===
8080

`},
	{"02_sections", caseSections, `=== sections ===
main
db

=== items db ===
host = localhost
port = 5432

=== remove-section db ===
Removed [db]

=== sections after ===
["main"]

`},
	{"03_search", caseSearch, `=== exact ===
[cities] capital = Nairobi

=== ignore case ===
[cities] capital = Nairobi

=== fuzzy ===
[cities] capital = Nairobi

=== none ===
No match found

`},
	{"04_json", caseJSON, `=== export ===
{"main":{"count":15},"db":{"hosts":["a","b"]}}

=== import ===
Imported data.json

=== imported ===
{"main":{"count":15},"db":{"hosts":["a","b"]},"cache":{"ttl":60}}

`},
	{"05_env", caseEnv, `=== export ===
DB_HOST=localhost
MAIN_NAME=demo

=== import ===
Imported 1 variables

=== imported ===
port = 8080

`},
}

func caseSetGet(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	res, err := mustRun(r, sandbox, "set", "count", "15", "tags", "['a', 'b']")
	if err != nil {
		return "", err
	}
	section(&out, "set", res.Stdout)

	res, err = mustRun(r, sandbox, "get", "count")
	if err != nil {
		return "", err
	}
	section(&out, "get count", res.Stdout)

	res = r.RunJSON(sandbox, "get", "tags")
	section(&out, "get tags json", res.Stdout)

	res = r.Run(sandbox, nil, "get", "missing")
	sectionExitCode(&out, "get missing", res.ExitCode)

	res, err = mustRun(r, sandbox, "get", "port", "--default", "8080")
	if err != nil {
		return "", err
	}
	section(&out, "get default", res.Stdout)

	return out.String(), nil
}

func caseSections(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	if _, err := mustRun(r, sandbox, "set", "host", "localhost", "port", "5432", "--in", "db"); err != nil {
		return "", err
	}

	res, err := mustRun(r, sandbox, "sections")
	if err != nil {
		return "", err
	}
	section(&out, "sections", res.Stdout)

	res, err = mustRun(r, sandbox, "items", "db")
	if err != nil {
		return "", err
	}
	section(&out, "items db", res.Stdout)

	res, err = mustRun(r, sandbox, "remove-section", "db")
	if err != nil {
		return "", err
	}
	section(&out, "remove-section db", res.Stdout)

	res = r.RunJSON(sandbox, "sections")
	section(&out, "sections after", res.Stdout)

	return out.String(), nil
}

func caseSearch(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	if _, err := mustRun(r, sandbox, "set", "capital", "Nairobi", "--in", "cities"); err != nil {
		return "", err
	}

	for _, step := range []struct {
		label string
		args  []string
	}{
		{"exact", []string{"search", "Nairobi"}},
		{"ignore case", []string{"search", "NAIROBI", "--ignore-case"}},
		{"fuzzy", []string{"search", "Nairobbi", "--fuzzy", "--threshold", "0.8"}},
		{"none", []string{"search", "Mombasa"}},
	} {
		res, err := mustRun(r, sandbox, step.args...)
		if err != nil {
			return "", err
		}
		section(&out, step.label, res.Stdout)
	}

	return out.String(), nil
}

func caseJSON(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	if _, err := mustRun(r, sandbox, "set", "count", "15"); err != nil {
		return "", err
	}
	if _, err := mustRun(r, sandbox, "set", "hosts", "['a', 'b']", "--in", "db"); err != nil {
		return "", err
	}

	res, err := mustRun(r, sandbox, "export", "json")
	if err != nil {
		return "", err
	}
	section(&out, "export", res.Stdout)

	doc := `{"@cache": {"ttl": 60}}`
	if err := os.WriteFile(filepath.Join(sandbox, "data.json"), []byte(doc), 0644); err != nil {
		return "", err
	}
	res, err = mustRun(r, sandbox, "import", "json", "data.json", "--identifier", "@")
	if err != nil {
		return "", err
	}
	section(&out, "import", res.Stdout)

	res, err = mustRun(r, sandbox, "show", "--json")
	if err != nil {
		return "", err
	}
	section(&out, "imported", res.Stdout)

	return out.String(), nil
}

func caseEnv(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	if _, err := mustRun(r, sandbox, "set", "name", "demo"); err != nil {
		return "", err
	}
	if _, err := mustRun(r, sandbox, "set", "host", "localhost", "--in", "db"); err != nil {
		return "", err
	}

	res, err := mustRun(r, sandbox, "export", "env")
	if err != nil {
		return "", err
	}
	section(&out, "export", res.Stdout)

	res = r.Run(sandbox, []string{"E2EAPP_PORT=8080"}, "import", "env", "--prefix", "e2eapp")
	if res.ExitCode != 0 {
		sectionExitCode(&out, "import", res.ExitCode)
		return out.String(), nil
	}
	section(&out, "import", res.Stdout)

	res, err = mustRun(r, sandbox, "items", "e2eapp")
	if err != nil {
		return "", err
	}
	section(&out, "imported", res.Stdout)

	return out.String(), nil
}
