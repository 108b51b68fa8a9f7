// Command polarity is the test runner for the polarity core (§6 CLI):
// it loads the static case registry and a golden-expectation manifest,
// evaluates every case matching --filter, and reports pass/fail. Shaped
// after the original's test/test-runner/src/cli/run.rs Config{filter,
// debug} and cmd/ailang/main.go's flag/color conventions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/MangoIV/polarity/internal/perr"
	"github.com/MangoIV/polarity/internal/testsuite"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

func main() {
	var (
		filter         = flag.String("filter", "*", "doublestar glob matched against case names")
		debug          = flag.Bool("debug", false, "also print the evaluated output of passing cases")
		updateExpected = flag.Bool("update-expected", false, "overwrite the manifest with freshly evaluated output")
		manifestPath   = flag.String("manifest", "internal/testsuite/manifest.yaml", "path to the golden-expectation manifest")
		interactive    = flag.Bool("interactive", false, "re-run a single case interactively instead of the full suite")
	)
	flag.Parse()

	if *interactive {
		testsuite.Interactive(testsuite.Cases, os.Stdout)
		return
	}

	manifest, err := testsuite.LoadManifest(*manifestPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", red("Error"), err)
			os.Exit(1)
		}
		manifest = &testsuite.Manifest{}
	}

	cfg := testsuite.Config{Filter: *filter, Debug: *debug, UpdateExpected: *updateExpected}
	res, err := testsuite.Run(testsuite.Cases, manifest, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red("Error"), err)
		os.Exit(1)
	}

	if *updateExpected {
		if err := manifest.Save(*manifestPath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", red("Error"), err)
			os.Exit(1)
		}
		fmt.Println("Updated expected outputs.")
		return
	}

	printResult(res, cfg)
	if !res.Success() {
		os.Exit(1)
	}
}

func printResult(res *testsuite.Result, cfg testsuite.Config) {
	for _, c := range res.Cases {
		switch {
		case c.Passed:
			fmt.Printf("%s %s\n", green("PASS"), c.Name)
			if cfg.Debug {
				fmt.Printf("  %s %s\n", dim("=>"), c.Got)
			}
		case c.Err != nil:
			fmt.Printf("%s %s: %s\n", red("FAIL"), c.Name, renderErr(c.Err))
		default:
			fmt.Printf("%s %s\n", red("FAIL"), c.Name)
			fmt.Printf("  expected: %s\n", c.Expected)
			fmt.Printf("  got:      %s\n", c.Got)
			if c.Diff != "" {
				fmt.Printf("  diff:\n%s\n", c.Diff)
			}
		}
	}
	fmt.Println()
	fmt.Printf("%s %d/%d passed\n", bold("Summary:"), passed(res), len(res.Cases))
}

// renderErr flattens a case failure to a diagnostic string, using the
// reportable taxonomy's aligned rendering when the error carries one.
func renderErr(err error) string {
	if reportable, ok := err.(perr.Reportable); ok {
		return perr.Render(reportable.Report())
	}
	return err.Error()
}

func passed(res *testsuite.Result) int {
	n := 0
	for _, c := range res.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}
