// Command gencompletions writes shell completion scripts for heif-enc to ./completions.
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/napalu/heifopt/completion"
	"github.com/napalu/heifopt/heifenc"
)

type logReporter struct {
	logger *log.Logger
}

func (r logReporter) CommandStarted(name string) {
	r.logger.Info("generating completions", "command", name)
}

func (r logReporter) ShellStarted(name string, shell completion.Shell, path string) {
	r.logger.Info("generating completion", "command", name, "shell", shell, "path", path)
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "gencompletions",
	})

	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	styles.Keys["shell"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styles.Keys["path"] = lipgloss.NewStyle().Faint(true)
	logger.SetStyles(styles)

	return logger
}

func run(logger *log.Logger, dir string) error {
	logger.Info("Current working dir", "dir", dir)

	commands := []completion.Descriptor{
		heifenc.Command(),
	}

	return completion.GenerateAll(filepath.Join(dir, "completions"), commands,
		completion.WithReporter(logReporter{logger: logger}))
}

func main() {
	logger := newLogger(os.Stdout)

	dir, err := os.Getwd()
	if err != nil {
		logger.Error("cannot resolve working directory", "error", err)
		os.Exit(1)
	}

	if err := run(logger, dir); err != nil {
		logger.Error("completion generation failed", "error", err)
		os.Exit(1)
	}
}
