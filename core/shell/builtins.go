package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// ErrInvalidInput reports an empty argument vector.
var ErrInvalidInput = errors.New("expected 1 argument")

// InvalidBuiltinError reports a keyword outside the builtin set. It is
// recoverable: the interpreter catches it and falls back to the alias
// registry and the PATH.
type InvalidBuiltinError struct {
	Keyword string
}

func (e *InvalidBuiltinError) Error() string {
	return e.Keyword
}

// AllBuiltins holds every registered builtin keyword.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// RunBuiltin dispatches args to the named builtin; args[0] is the
// keyword. Unknown keywords yield *InvalidBuiltinError so the caller
// can resolve the command some other way.
func (s *Shell) RunBuiltin(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrInvalidInput
	}

	builtin, ok := AllBuiltins[args[0]]
	if !ok {
		return 0, &InvalidBuiltinError{Keyword: args[0]}
	}
	return builtin.Main(s, args), nil
}

// Alias manages the alias registry: list every alias, set name=value,
// or query a single name.
func Alias(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		for _, name := range s.Aliases.Names() {
			text, _ := s.Aliases.Get(name)
			fmt.Fprintf(s.stdout, "%s=%s\n", name, text)
		}
		return 0

	case 2:
		arg := args[1]
		if i := strings.IndexByte(arg, '='); i >= 0 {
			s.Aliases.Set(arg[:i], trimQuotes(arg[i+1:]))
			return 0
		}
		if text, ok := s.Aliases.Get(arg); ok {
			fmt.Fprintf(s.stdout, "%s=%s\n", arg, text)
			return 0
		}
		fmt.Fprintf(s.stderr, "alias: %s not found\n", arg)
		return 2

	default:
		fmt.Fprintln(s.stderr, "alias: too many arguments")
		return 3
	}
}

// trimQuotes removes one layer of matching surrounding quotes.
func trimQuotes(v string) string {
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// Builtin re-dispatches to a builtin by name, bypassing any alias or
// executable shadowing it.
func Builtin(s *Shell, args []string) int {
	code, err := s.RunBuiltin(args[1:])
	if err == nil {
		return code
	}

	var invalid *InvalidBuiltinError
	if errors.As(err, &invalid) {
		s.errorf("no such builtin: %s", invalid.Keyword)
		return 1
	}
	s.errorf("%v", err)
	return 2
}

// Cd changes the working directory, defaulting to $HOME. The path must
// exist; an existing path that still can't be entered reports a
// distinct code.
func Cd(s *Shell, args []string) int {
	var path string
	switch len(args) {
	case 1:
		path = os.Getenv("HOME")
		if path == "" {
			path = "/"
		}
	case 2:
		path = args[1]
	default:
		fmt.Fprintf(s.stderr, "%s: expected [PATH] argument\n", args[0])
		return 1
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(s.stderr, "%s: no such file or directory: %s\n", args[0], path)
		return 2
	}
	if err := os.Chdir(path); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 3
	}
	return 0
}

// Echo prints its arguments space-joined.
func Echo(s *Shell, args []string) int {
	fmt.Fprintln(s.stdout, strings.Join(args[1:], " "))
	return 0
}

// Exit terminates the whole shell process. The first argument is the
// exit code; a missing or unparsable argument means 0.
func Exit(s *Shell, args []string) int {
	code := 0
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			code = n
		}
	}

	s.exit(code)
	return code
}

// History prints the history file, one numbered line per entry. The -c
// flag deletes the file instead.
func History(s *Shell, args []string) int {
	opts := getopt.New()
	clearOpt := opts.Bool('c', "clear the history by deleting all entries")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintln(s.stderr, err)
		fmt.Fprintln(s.stderr, "usage: history [-c]")
		return 1
	}

	path := s.historyPath()

	if *clearOpt {
		if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			s.errorf("could not clear ~/%s", s.config.HistoryFile)
			return 1
		}
		return 0
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.errorf("could not read from ~/%s", s.config.HistoryFile)
		return 1
	}

	lines := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; lines.Scan(); i++ {
		fmt.Fprintf(s.stdout, "%d %s\n", i, lines.Text())
	}
	return 0
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		s.errorf("could not find current directory")
		return 1
	}

	fmt.Fprintln(s.stdout, wd)
	return 0
}

func init() {
	AllBuiltins["alias"] = ShellBuiltinFunc(Alias)
	AllBuiltins["builtin"] = ShellBuiltinFunc(Builtin)
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["chdir"] = ShellBuiltinFunc(Cd)
	AllBuiltins["echo"] = ShellBuiltinFunc(Echo)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["bye"] = ShellBuiltinFunc(Exit)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
}
