package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandArgv(t *testing.T) {
	assert.Equal(t, []string{""}, Command{}.Argv())
	assert.Equal(t, []string{"ls"}, Command{Keyword: "ls"}.Argv())
	assert.Equal(t,
		[]string{"echo", "a", "b"},
		Command{Keyword: "echo", Args: []string{"a", "b"}}.Argv())
}
