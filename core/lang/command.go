package lang

// Command is one parsed shell command: a keyword and its arguments.
// The zero value, with its empty keyword, denotes a no-op line and
// interprets as success.
type Command struct {
	Keyword string
	Args    []string
}

// Argv returns the full argument vector, keyword first.
func (c Command) Argv() []string {
	return append([]string{c.Keyword}, c.Args...)
}
