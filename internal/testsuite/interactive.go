package testsuite

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Interactive runs a small prompt loop (grounded in the teacher's
// internal/repl, which uses the same peterh/liner history-and-completion
// pattern for a language REPL) letting a developer re-run one failing
// case by name and inspect its evaluated value, rather than diffing the
// whole suite. There is no general REPL here — the core has no surface
// syntax to read (§1 Non-goal) — so this is scoped to case names only.
func Interactive(cases []Case, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(func(partial string) (matches []string) {
		for _, c := range cases {
			if strings.HasPrefix(c.Name, partial) {
				matches = append(matches, c.Name)
			}
		}
		return
	})

	fmt.Fprintln(out, "Enter a case name to re-run it (:quit to exit):")
	for {
		input, err := line.Prompt("case> ")
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if input == ":quit" {
			return
		}

		c, ok := findCase(cases, input)
		if !ok {
			fmt.Fprintf(out, "no such case %q\n", input)
			continue
		}
		got, runErr := c.Run()
		if runErr != nil {
			fmt.Fprintf(out, "%s: error: %s\n", c.Name, runErr)
			continue
		}
		fmt.Fprintf(out, "%s => %s\n", c.Name, got)
	}
}

func findCase(cases []Case, name string) (Case, bool) {
	for _, c := range cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}
