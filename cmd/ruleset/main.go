// ruleset validates rule-bundle documents against the bundle schema
// and the semantic checks the rule store applies on upsert. Exit code
// 0 means every file is clean; 1 means at least one problem.
//
// Usage:
//
//	ruleset validate bundle.json [more.json ...]
//	cat bundle.json | ruleset validate -
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mediqo/mediqo/pkg/policy"
)

func main() {
	args := os.Args[1:]
	if len(args) < 1 || args[0] != "validate" {
		fmt.Fprintln(os.Stderr, "usage: ruleset validate <bundle.json ...|->")
		os.Exit(2)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}

	clean := true
	for _, path := range files {
		if !validateFile(path) {
			clean = false
		}
	}
	if !clean {
		os.Exit(1)
	}
}

func validateFile(path string) bool {
	raw, err := readBundle(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	bundle, problems := policy.ValidateBundle(raw)
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("%s: %s: %s\n", path, p.Path, p.Message)
		}
		return false
	}

	// A bundle that validates must also compile; a failure here is a
	// checker gap worth surfacing, not a crash.
	if _, err := policy.CompileBundle(bundle); err != nil {
		fmt.Printf("%s: /: %v\n", path, err)
		return false
	}

	fmt.Printf("%s: ok (bundle %s, %d rules)\n", path, bundle.BundleID, len(bundle.Rules))
	return true
}

func readBundle(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
