package main

import (
	"os"
	"strings"

	"folio-cli/internal/cli"

	"github.com/spf13/cobra"
)

func rewriteDirectOpenArgs(argv []string, commands map[string]bool) []string {
	// Convenience: `folio <project-id>` works like `folio --open <project-id>`.
	//
	// Cobra treats the first positional token as a subcommand, so argv is
	// rewritten before parsing. Persistent flags may come first
	// (`folio --catalog x.yaml hdb-cats`), so look for the first positional.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--catalog":   true,
		"--format":    true,
		"--debug-log": true,
		"--open":      true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if commands[a] {
			return argv
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "--open")
		out = append(out, argv[i:]...)
		return out
	}

	return argv
}

func commandNames(root *cobra.Command) map[string]bool {
	names := map[string]bool{"help": true, "completion": true}
	for _, c := range root.Commands() {
		names[c.Name()] = true
		for _, alias := range c.Aliases {
			names[alias] = true
		}
	}
	return names
}

func main() {
	cmd := cli.NewRootCmd()
	os.Args = rewriteDirectOpenArgs(os.Args, commandNames(cmd))
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
