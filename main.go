package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"revu/internal/cli"
	"revu/internal/config"
	"revu/internal/logs"
	"revu/internal/store"
	"revu/internal/tui"
)

func main() {
	dirsFlag := flag.String("dir", "", "Notes directories (comma-separated)")
	flag.StringVar(dirsFlag, "d", "", "Notes directories (shorthand, comma-separated)")
	flag.Parse()

	cliFlags := config.CLIFlags{
		Dirs: config.ParseCommaSeparated(*dirsFlag),
	}

	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Dirs) > 0 {
		if err := logs.Initialize(cfg.Dirs[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	repo := store.Load(cfg.Dirs, cfg.Extensions, today)

	args := flag.Args()
	if len(args) > 0 {
		os.Exit(cli.Run(args, repo, cfg))
	}

	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, repo, today)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
