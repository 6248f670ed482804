package repl

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the interactive-loop knobs that can be set from a TOML
// file or overridden by flags.
type Config struct {
	Prompt   string `toml:"prompt"`
	Greeting string `toml:"greeting"`
	Color    string `toml:"color"` // auto|on|off
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Prompt:   "nimlisp> ",
		Greeting: "nimlisp - type an expression, or quit to leave",
		Color:    "auto",
	}
}

// LoadConfig decodes path on top of the defaults. A missing file is not
// an error, the defaults come back untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return cfg, err
	}

	return cfg, nil
}
