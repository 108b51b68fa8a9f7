package testsuite

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"
)

// Config mirrors the original test-runner's Config{filter, debug}
// (test/test-runner/src/cli/run.rs), plus UpdateExpected lifted from the
// CLI's --update-expected flag into the run configuration itself.
type Config struct {
	Filter         string
	Debug          bool
	UpdateExpected bool
}

// CaseResult is one case's outcome.
type CaseResult struct {
	Name     string
	Passed   bool
	Got      string
	Expected string
	Err      error
	Diff     string
}

// Result is the outcome of a full run.
type Result struct {
	Cases []CaseResult
}

// Success reports whether every matched case passed.
func (r *Result) Success() bool {
	for _, c := range r.Cases {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Run evaluates every case in cases whose name matches cfg.Filter (a
// doublestar glob; "*" matches everything) against manifest, recording a
// CaseResult per match. When cfg.UpdateExpected is set, a mismatch is not
// a failure: manifest is updated in place and the case is recorded as
// passed under its freshly written expectation.
func Run(cases []Case, manifest *Manifest, cfg Config) (*Result, error) {
	filter := cfg.Filter
	if filter == "" {
		filter = "*"
	}

	res := &Result{}
	for _, c := range cases {
		matched, err := doublestar.Match(filter, c.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
		if !matched {
			continue
		}

		got, runErr := c.Run()
		cr := CaseResult{Name: c.Name, Got: got, Err: runErr}

		if cfg.UpdateExpected {
			if runErr == nil {
				manifest.Set(c.Name, got)
			}
			cr.Passed = runErr == nil
			res.Cases = append(res.Cases, cr)
			continue
		}

		expected, ok := manifest.Expected(c.Name)
		cr.Expected = expected
		switch {
		case runErr != nil:
			cr.Passed = false
		case !ok:
			cr.Passed = false
			cr.Diff = fmt.Sprintf("no recorded expectation for %q (run with --update-expected)", c.Name)
		case got != expected:
			cr.Passed = false
			cr.Diff = cmp.Diff(expected, got)
		default:
			cr.Passed = true
		}
		res.Cases = append(res.Cases, cr)
	}
	return res, nil
}
