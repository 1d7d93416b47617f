package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshell-dev/rshell/core/config"
)

// runRoot executes the root command with args, recording the exit
// codes it would have ended the process with.
func runRoot(t *testing.T, args ...string) []int {
	t.Helper()

	var codes []int
	orig := exit
	exit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exit = orig })

	rootCmd.SetArgs(args)
	assert.NoError(t, rootCmd.Execute())
	return codes
}

func TestRootOneShot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	orig, err := os.Getwd()
	assert.NoError(t, err)
	t.Cleanup(func() { os.Chdir(orig) })

	// cd in the startup script makes any stray startup run visible.
	rc := filepath.Join(home, config.Default().StartupFile)
	assert.NoError(t, os.WriteFile(rc, []byte("cd /\n"), 0644))

	t.Run("empty line exits zero without the startup script", func(t *testing.T) {
		codes := runRoot(t, "-c", "")

		assert.Equal(t, []int{0}, codes)
		wd, err := os.Getwd()
		assert.NoError(t, err)
		assert.Equal(t, orig, wd)
	})

	t.Run("line status becomes the exit code", func(t *testing.T) {
		codes := runRoot(t, "-c", "false")

		assert.Equal(t, []int{1}, codes)
	})
}
