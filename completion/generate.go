package completion

import (
	"path/filepath"
)

// Descriptor is a command whose completion scripts can be generated
type Descriptor interface {
	ProgramName() string
	GetCompletionData() CompletionData
}

// Reporter is notified before each command and each shell is generated
type Reporter interface {
	CommandStarted(name string)
	ShellStarted(name string, shell Shell, path string)
}

type generateConfig struct {
	reporter Reporter
	shells   []Shell
}

// Option configures GenerateAll
type Option func(*generateConfig)

// WithReporter sets the progress reporter
func WithReporter(r Reporter) Option {
	return func(c *generateConfig) {
		c.reporter = r
	}
}

// WithShells restricts generation to the given shells
func WithShells(shells ...Shell) Option {
	return func(c *generateConfig) {
		c.shells = append([]Shell(nil), shells...)
	}
}

type nopReporter struct{}

func (nopReporter) CommandStarted(string)             {}
func (nopReporter) ShellStarted(string, Shell, string) {}

// GenerateAll writes one completion script per command and shell to
// outputRoot/<command>/<shell>/<file>. The first error aborts the run; files written before it are kept.
func GenerateAll(outputRoot string, commands []Descriptor, opts ...Option) error {
	cfg := &generateConfig{
		reporter: nopReporter{},
		shells:   Shells(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, cmd := range commands {
		name := cmd.ProgramName()
		cfg.reporter.CommandStarted(name)
		data := cmd.GetCompletionData()

		for _, shell := range cfg.shells {
			cm := NewCompletionManager(shell, name, filepath.Join(outputRoot, name, shell.String()))
			cfg.reporter.ShellStarted(name, shell, cm.Path())
			cm.Accept(data)
			if err := cm.SaveCompletion(); err != nil {
				return err
			}
		}
	}

	return nil
}
