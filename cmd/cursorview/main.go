// Package main provides the cursorview command line tool: it scans
// Cursor's workspace storage for AI chat prompts and presents them as a
// console summary, a search, a markdown export, or an interactive
// browser.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"cursorview/pkg/config"
	"cursorview/pkg/logging"
	"cursorview/pkg/render"
	"cursorview/pkg/storage"
	"cursorview/pkg/tui"
	"cursorview/pkg/types"
	"cursorview/pkg/workspace"
)

const version = "0.1.0"

// Flags holds the parsed command line options.
type Flags struct {
	Days        int
	Today       bool
	Search      string
	Workspace   int
	Export      string
	Limit       int
	TUI         bool
	ShowVersion bool
}

func main() {
	cfg, cfgErr := config.Load("")
	flags := parseFlags(cfg)

	if flags.ShowVersion {
		fmt.Printf("cursorview v%s\n", version)
		return
	}

	log, _ := logging.New()
	defer log.Close()

	if cfgErr != nil {
		// Defaults are in effect; tell the user once, then continue.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", cfgErr)
		log.Warnf("config load: %v", cfgErr)
	}

	if err := run(flags, cfg, log); err != nil {
		// Environment and user input problems end the run with a
		// message, not a stack trace or a special exit code.
		fmt.Println(err)
	}
}

// parseFlags parses the command line, using config values as defaults.
func parseFlags(cfg config.Config) *Flags {
	flags := &Flags{}

	flag.IntVar(&flags.Days, "days", cfg.Days, "Show workspaces modified in the last N days")
	flag.BoolVar(&flags.Today, "today", false, "Show only today's activity (1-day window)")
	flag.StringVar(&flags.Search, "search", "", "Search for prompts containing this text")
	flag.IntVar(&flags.Workspace, "workspace", 0, "Show prompts from workspace N (1-based)")
	flag.StringVar(&flags.Export, "export", "", "Export chat history to a markdown file")
	flag.IntVar(&flags.Limit, "limit", cfg.Limit, "Limit the number of prompts shown in the detail view")
	flag.BoolVar(&flags.TUI, "tui", false, "Browse workspaces interactively")
	flag.BoolVar(&flags.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cursorview - Cursor chat history viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cursorview [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cursorview                         # summary of recent workspaces\n")
		fmt.Fprintf(os.Stderr, "  cursorview -today                  # only today's activity\n")
		fmt.Fprintf(os.Stderr, "  cursorview -workspace 2            # prompts from the 2nd workspace\n")
		fmt.Fprintf(os.Stderr, "  cursorview -search 'refactor'      # search all prompts\n")
		fmt.Fprintf(os.Stderr, "  cursorview -export history.md      # export everything to markdown\n")
		fmt.Fprintf(os.Stderr, "  cursorview -tui                    # interactive browser\n")
		fmt.Fprintf(os.Stderr, "\nDefaults for -days and -limit can be set in ~/.cursorview/config.yaml.\n")
	}

	flag.Parse()
	return flags
}

// run scans the storage root and dispatches to the selected mode. Mode
// precedence: search, workspace, export, tui, summary.
func run(flags *Flags, cfg config.Config, log *logging.Logger) error {
	override := cfg.StorageRoot
	if env := os.Getenv("CURSORVIEW_STORAGE"); env != "" {
		override = env
	}

	root, err := storage.Locate(override)
	if err != nil {
		if errors.Is(err, storage.ErrRootNotFound) {
			return err
		}
		return fmt.Errorf("locating storage: %w", err)
	}
	log.Infof("scanning %s", root)

	days := flags.Days
	if flags.Today {
		days = 1
	}

	records := workspace.Scan(root, workspace.Options{Days: days}, log)
	if len(records) == 0 {
		return fmt.Errorf("no workspaces with chat history found in the last %d day(s)", days)
	}
	log.Infof("found %d workspaces", len(records))

	switch {
	case flags.Search != "":
		results := workspace.Search(records, flags.Search)
		render.SearchResults(os.Stdout, flags.Search, results)

	case flags.Workspace != 0:
		rec, err := workspace.Select(records, flags.Workspace)
		if err != nil {
			return err
		}
		render.Detail(os.Stdout, rec, flags.Limit, composerTabCount(rec))

	case flags.Export != "":
		if err := render.ExportMarkdown(flags.Export, records); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", flags.Export)

	case flags.TUI:
		if err := tui.Run(records); err != nil {
			return fmt.Errorf("tui error: %w", err)
		}

	default:
		render.Summary(os.Stdout, records)
	}

	return nil
}

// composerTabCount re-opens the workspace's database to count composer
// session tabs for the detail header. Best effort: 0 on any failure.
func composerTabCount(rec types.WorkspaceRecord) int {
	st, err := storage.Open(rec.DatabasePath)
	if err != nil {
		return 0
	}
	defer st.Close()

	data := storage.ComposerData(st)
	if data == nil {
		return 0
	}
	tabs, ok := data["allComposers"].([]any)
	if !ok {
		return 0
	}
	return len(tabs)
}
