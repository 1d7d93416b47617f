package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/rshell-dev/rshell/core/config"
	"github.com/rshell-dev/rshell/core/lang"
)

var (
	promptOK   = color.New(color.FgGreen)
	promptFail = color.New(color.FgRed)
)

// Shell ties the language front end to the process: it owns the alias
// registry, the previous-exit-code cell, the standard streams and the
// interactive loop.
type Shell struct {
	config *config.Config
	fs     afero.Fs

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	Aliases *Aliases

	mu       sync.Mutex
	lastExit int

	// exit terminates the whole process; swapped out by tests.
	exit func(int)
}

// New builds a Shell wired to the real OS.
func New(cfg *config.Config) *Shell {
	return &Shell{
		config:  cfg,
		fs:      afero.NewOsFs(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		Aliases: NewAliases(),
		exit:    os.Exit,
	}
}

var _ lang.Expander = (*Shell)(nil)

// LookupAlias implements lang.Expander.
func (s *Shell) LookupAlias(name string) (string, bool) {
	return s.Aliases.Get(name)
}

// LastExitCode returns the exit status of the last completed line. It
// feeds "$?" substitution and the prompt color.
func (s *Shell) LastExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastExit
}

func (s *Shell) setLastExit(code int) {
	s.mu.Lock()
	s.lastExit = code
	s.mu.Unlock()
}

// errorf prints a one-line diagnostic in the shell's voice.
func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintf(s.stderr, "rshell: "+format+"\n", args...)
}

// RunLine runs one line exactly as if typed at the prompt and returns
// its exit status, which also becomes the new previous exit code.
func (s *Shell) RunLine(line string) int {
	return s.finishLine(s.Run(line))
}

// finishLine reports a failed parse and records the line's status for
// "$?" and the prompt.
func (s *Shell) finishLine(code int, err error) int {
	if err != nil {
		s.errorf("%v", err)

		var parseErr *lang.ParseError
		if errors.As(err, &parseErr) {
			code = parseErr.Code()
		}
	}
	s.setLastExit(code)
	return code
}

// RunInteractive drives the prompt loop until EOF or SIGTERM and
// returns the process exit status. signals is polled once per
// iteration, never interrupt-driven: a pending SIGINT records the
// interrupted status and restarts the cycle, a SIGTERM ends the loop.
func (s *Shell) RunInteractive(signals <-chan os.Signal) int {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  readline.NewCancelableStdin(s.stdin),
		Stdout:                 s.stdout,
		Stderr:                 s.stderr,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		s.errorf("%v", err)
		return 1
	}
	defer rl.Close()

	history, err := s.openHistory()
	if err != nil {
		history = nil
	} else {
		defer history.Close()
	}

	for {
		select {
		case sig := <-signals:
			if sig == syscall.SIGTERM {
				return 0
			}
			s.setLastExit(ExitInterrupted)
			continue
		default:
		}

		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		switch {
		case err == io.EOF:
			fmt.Fprintln(s.stdout)
			return 0
		case err == readline.ErrInterrupt:
			s.setLastExit(ExitInterrupted)
			continue
		case err != nil:
			s.errorf("%v", err)
			return 1
		}

		if history != nil {
			fmt.Fprintln(history, line)
		}
		rl.SaveHistory(line)

		s.finishLine(s.Run(line))
	}
}

// RunScript executes a file line by line, each exactly as interactive
// input. The first parse error stops the script after being reported.
func (s *Shell) RunScript(path string) error {
	fd, err := s.fs.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	lines := bufio.NewScanner(fd)
	for lines.Scan() {
		code, err := s.Run(lines.Text())
		s.finishLine(code, err)
		if err != nil {
			return err
		}
	}
	return lines.Err()
}

// RunStartup executes the startup script under $HOME if one exists.
// Parse errors stop the script but not the shell.
func (s *Shell) RunStartup() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	path := filepath.Join(home, s.config.StartupFile)
	if ok, err := afero.Exists(s.fs, path); err != nil || !ok {
		return
	}
	_ = s.RunScript(path)
}

// prompt renders "dir glyph " with $HOME abbreviated to ~ and the glyph
// colored green or red by the previous line's status.
func (s *Shell) prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}

	glyph := s.config.Prompt
	if s.shouldColor() {
		c := promptOK
		if s.LastExitCode() != 0 {
			c = promptFail
		}
		c.EnableColor()
		glyph = c.Sprint(glyph)
	}

	return fmt.Sprintf("%s %s ", wd, glyph)
}

// shouldColor reports whether the prompt glyph gets colored under the
// configured mode.
func (s *Shell) shouldColor() bool {
	switch s.config.Color {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		f, ok := s.stdout.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

func (s *Shell) historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}
	return filepath.Join(home, s.config.HistoryFile)
}

// openHistory opens the history file for appending, creating it when
// missing.
func (s *Shell) openHistory() (afero.File, error) {
	return s.fs.OpenFile(s.historyPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}
