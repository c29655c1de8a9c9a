package completion

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

type CompletionManager struct {
	Shell       Shell
	ProgramName string
	Dir         string
	generator   Generator
	script      string
	rendered    bool
}

// NewCompletionManager creates a completion manager which renders and saves the completion script of
// programName for shell into dir
func NewCompletionManager(shell Shell, programName, dir string) *CompletionManager {
	return &CompletionManager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Dir:         dir,
		generator:   shell.Generator(),
	}
}

// Accept generates and stores the completion script from the provided data
func (cm *CompletionManager) Accept(data CompletionData) {
	cm.script = cm.generator.Generate(cm.ProgramName, data)
	cm.rendered = true
}

// Script returns the script produced by the last call to Accept
func (cm *CompletionManager) Script() string {
	return cm.script
}

// Path returns the file the script is saved to
func (cm *CompletionManager) Path() string {
	return filepath.Join(cm.Dir, cm.Shell.FileName(cm.ProgramName))
}

// SaveCompletion saves the previously generated completion script, replacing any existing file
func (cm *CompletionManager) SaveCompletion() (err error) {
	if !cm.rendered {
		return fmt.Errorf("no completion script generated for %s", cm.Shell)
	}

	if err = os.MkdirAll(cm.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", cm.Dir, err)
	}

	path := cm.Path()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write file %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(cm.script); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
