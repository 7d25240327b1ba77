package cli

import (
	"fmt"
	"os"

	"revu/internal/config"
	"revu/internal/store"
)

// Run executes a CLI subcommand and returns the process exit code.
func Run(args []string, repo *store.Repository, cfg *config.Config) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runList(repo)
	case "review", "r":
		return runReview(cmdArgs, repo, cfg)
	case "find", "f":
		return runFind(cmdArgs, repo)
	case "export":
		return runExport(cmdArgs, repo)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`revu - project and goal review queues

Usage: revu [flags] [command] [arguments]

Commands:
  list        Print all queues (ready to review, other active, completed, cancelled)
  review [q]  Review due notes one by one; with a query, review the best title match
  find <q>    Locate a note by approximate title match
  export      Write summary rows (-o FILE to write to a file)

Flags:
  -dir DIRS   Notes directories (comma-separated)

Run with no command to open the interactive browser.`)
}
