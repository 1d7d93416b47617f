package config

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)
	path := "/home/tester/" + ConfigurationName

	if err := Initialize(fsys, path, logger); err != nil {
		t.Fatal(err)
	}

	// The written file loads back as the default configuration.
	cfg, err := Load(fsys, path)
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// A second run must not clobber an edited file.
	edited := []byte("prompt: '$'\n")
	assert.NoError(t, afero.WriteFile(fsys, path, edited, 0644))
	assert.NoError(t, Initialize(fsys, path, logger))

	data, err := afero.ReadFile(fsys, path)
	assert.NoError(t, err)
	assert.Equal(t, edited, data)
}
