package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the optional per-user config file under $HOME.
const ConfigurationName = ".rshell.yaml"

// Color modes for the prompt glyph.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config holds the shell's user-tunable settings.
type Config struct {
	// Prompt is the glyph drawn after the working directory.
	Prompt string `json:"prompt" validate:"required"`
	// Color controls when the glyph is colored by the previous exit
	// status.
	Color string `json:"color" validate:"oneof=always auto never"`
	// HistoryFile is the history file name under $HOME.
	HistoryFile string `json:"history_file" validate:"required"`
	// StartupFile is the startup script name under $HOME.
	StartupFile string `json:"startup_file" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
