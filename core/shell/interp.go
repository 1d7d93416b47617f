package shell

import (
	"errors"
	"io/fs"
	"os/exec"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/rshell-dev/rshell/core/lang"
)

// Exit codes for failures the shell itself reports.
const (
	ExitNotFound    = 127
	ExitSpawnError  = 126
	ExitWaitError   = 125
	ExitInterrupted = 130
)

// interpret resolves and runs a single command: builtin first, then the
// alias registry, then an external process inheriting the shell's
// standard streams. The result is the command's exit status; -1 means
// the child died to a signal instead of exiting.
func (s *Shell) interpret(cmd lang.Command) int {
	code, err := s.RunBuiltin(cmd.Argv())
	if err == nil {
		return code
	}

	var invalid *InvalidBuiltinError
	if !errors.As(err, &invalid) || invalid.Keyword == "" {
		// An empty keyword is a no-op line; it succeeds without
		// running anything.
		return 0
	}

	name, args := s.resolveExternal(invalid.Keyword, cmd.Args)

	proc := exec.Command(name, args...)
	proc.Stdin = s.stdin
	proc.Stdout = s.stdout
	proc.Stderr = s.stderr

	if err := proc.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			s.errorf("command not found: %s", name)
			return ExitNotFound
		}
		s.errorf("%v", err)
		return ExitSpawnError
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when the child was killed by a signal.
			return exitErr.ExitCode()
		}
		s.errorf("%v", err)
		return ExitWaitError
	}
	return 0
}

// resolveExternal turns a keyword that matched no builtin into a
// program name and leading arguments. The alias registry is consulted
// once more for keywords the scanner could not substitute (those
// produced by variable expansion in the parser); the expansion is
// never itself re-expanded. The resolved text is then split into shell
// words, so a multi-word alias like "ls -la" spawns "ls" with "-la"
// ahead of the command's own arguments, and a quoted keyword stays one
// word.
func (s *Shell) resolveExternal(keyword string, args []string) (string, []string) {
	text, ok := s.Aliases.Get(keyword)
	if !ok {
		text = keyword
	}

	words, err := shlex.Split(text, true)
	if err != nil || len(words) == 0 {
		return text, args
	}
	return words[0], append(words[1:], args...)
}

// Run scans, parses and interprets one line of input. Commands joined
// by "&&" run left to right and short-circuit on the first failure.
// The result is the exit status of the last command that ran, or the
// parse error that stopped the whole line.
func (s *Shell) Run(line string) (int, error) {
	tokens := lang.NewScanner(line, s).ScanTokens()

	parser := lang.NewParser(tokens)
	parser.SetDiag(s.stderr)
	commands, err := parser.Parse()
	if err != nil {
		return 0, err
	}

	var code int
	for _, cmd := range commands {
		if code = s.interpret(cmd); code != 0 {
			break
		}
	}
	if code == -1 {
		code = ExitInterrupted
	}
	return code, nil
}
