package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/mcp"
	"github.com/ewaldman/brandloom/internal/ops"
	"github.com/ewaldman/brandloom/internal/storage"
	"github.com/ewaldman/brandloom/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"brand": true, "note": true, "dashboard": true,
	"generate": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// baseDir resolves the data directory: BRANDLOOM_HOME, else
// ~/.brandloom.
func baseDir() (string, error) {
	if dir := os.Getenv("BRANDLOOM_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".brandloom"), nil
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _                         _ _
  | |__  _ __ __ _ _ __   __| | | ___   ___  _ __ ___
  | '_ \| '__/ _' | '_ \ / _' | |/ _ \ / _ \| '_ ' _ \
  | |_) | | | (_| | | | | (_| | | (_) | (_) | | | | | |
  |_.__/|_|  \__,_|_| |_|\__,_|_|\___/ \___/|_| |_| |_|

  Brand voice and content dashboard

  Usage: brandloom <command> [options]
         brandloom --help

  MCP server mode requires piped input.`)
}

func main() {
	// Best-effort: a .env in the working directory can set
	// BRANDLOOM_HOME and friends.
	_ = godotenv.Load()

	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(ops.Stores{}, nil, "")
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	base, err := baseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	database, err := storage.Init(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	storage.ConfigurePool(database, cfg)

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tools in config: %v\n", unknown)
	}

	snapshots := storage.NewSnapshots(database)
	brands, err := store.NewBrandStore(snapshots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load brand store: %v\n", err)
		os.Exit(1)
	}
	pieces, err := store.NewContentStore(snapshots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load content store: %v\n", err)
		os.Exit(1)
	}
	st := ops.Stores{Brands: brands, Content: pieces}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(st, cfg, base)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'brandloom --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(st, cfg, base, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
