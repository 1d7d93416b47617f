package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleAliases() {
	a := NewAliases()
	a.Set("ll", "ls -la")
	a.Set("gs", "git status")

	for _, name := range a.Names() {
		text, _ := a.Get(name)
		fmt.Printf("%s=%s\n", name, text)
	}

	// Output: gs=git status
	// ll=ls -la
}

func TestAliases(t *testing.T) {
	a := NewAliases()

	_, ok := a.Get("ll")
	assert.False(t, ok)
	assert.Empty(t, a.Names())

	prev, ok := a.Set("ll", "ls -la")
	assert.False(t, ok)
	assert.Empty(t, prev)

	text, ok := a.Get("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -la", text)

	prev, ok = a.Set("ll", "ls -lah")
	assert.True(t, ok)
	assert.Equal(t, "ls -la", prev)

	text, ok = a.Get("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -lah", text)
}

func TestAliasesNamesSorted(t *testing.T) {
	a := NewAliases()
	a.Set("zz", "3")
	a.Set("aa", "1")
	a.Set("mm", "2")

	assert.Equal(t, []string{"aa", "mm", "zz"}, a.Names())
}
