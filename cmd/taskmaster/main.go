// Package main is the entry point for the TaskMaster TUI client.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/config"
	"github.com/taskmaster-app/taskmaster-tui/internal/session"
	"github.com/taskmaster-app/taskmaster-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `taskmaster - Terminal client for the TaskMaster task manager

USAGE:
    taskmaster [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

CONFIGURATION:
    Config file: ~/.config/taskmaster-tui/config.yaml

    Environment overrides:
      TASKMASTER_SERVER_URL   API base URL (default http://localhost:5000/api)
      TASKMASTER_TOKEN        Bearer token (skips the stored credential)

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        g/G         Go to top/bottom
        Tab         Switch between dashboard and tasks
        Esc         Go back

    Task Actions:
        a           Add new task
        e           Edit selected task
        x           Complete/uncomplete task
        d           Delete task (asks for confirmation)
        y           Copy task title

    Filtering:
        /           Search tasks
        f           Cycle status filter
        1/2/3       All / Active / Completed

    Other:
        r           Refresh
        L           Log out
        q           Quit
`

const configTemplate = `# TaskMaster TUI Configuration
# Location: ~/.config/taskmaster-tui/config.yaml

server:
  # Base URL of the TaskMaster API.
  url: "http://localhost:5000/api"

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Desktop notification when tasks are due today (default: true)
  notify_due: true

log:
  # debug, info, warn, error
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("taskmaster version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// newLogger builds a file-backed logger. The TUI owns the terminal, so
// nothing may log to stdout or stderr while it runs.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	dir, err := config.DataDir()
	if err != nil {
		return log
	}
	f, err := os.OpenFile(filepath.Join(dir, "taskmaster.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}

// runApp starts the main TUI application.
func runApp() error {
	// Optional .env in the working directory; environment still wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg)
	entry := logrus.NewEntry(log)

	client := api.NewClient(cfg.Server.URL)
	sess := session.New(client, session.KeyringStore{}, entry)

	app := tui.NewApp(client, sess, cfg, entry)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
