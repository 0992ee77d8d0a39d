// Package dmenu drives an external line-selection program (dmenu, rofi in
// dmenu mode, or anything argument-compatible) over stdin/stdout.
package dmenu

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

const defaultProgram = "dmenu"

// Menu invokes the external menu program once per call.
type Menu struct {
	program   string
	extraArgs []string
	passArgs  []string
	logger    *slog.Logger
}

// New creates a Menu from the loaded config.
func New(cfg Config, logger *slog.Logger) *Menu {
	program := cfg.Program()
	if program == "" {
		program = defaultProgram
	}
	return &Menu{
		program:   program,
		extraArgs: cfg.ExtraArgs(),
		passArgs:  cfg.PassphraseFlags(),
		logger:    logger,
	}
}

// SetProgram overrides the menu program binary.
func (m *Menu) SetProgram(program string) {
	m.program = program
}

// Select presents lines to the user and returns the chosen line, trimmed.
// An empty return with a nil error means the user cancelled.
func (m *Menu) Select(lines []string, prompt string) (string, error) {
	return m.run(lines, prompt, len(lines), nil)
}

// Input captures a free-form line of text (used for passphrase entry). The
// menu runs with no candidate lines and a zero line count.
func (m *Menu) Input(prompt string) (string, error) {
	return m.run(nil, prompt, 0, m.passArgs)
}

func (m *Menu) run(lines []string, prompt string, lineCount int, extra []string) (string, error) {
	args := []string{"-l", strconv.Itoa(lineCount), "-p", prompt, "-i"}
	args = append(args, m.extraArgs...)
	args = append(args, extra...)

	cmd := exec.Command(m.program, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	m.logger.Debug("menu", "cmd", m.program, "args", args, "lines", len(lines))
	if err := cmd.Run(); err != nil {
		// dmenu exits non-zero when the user presses escape; that is a
		// cancellation, not a failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", m.program, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
