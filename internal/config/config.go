// Package config loads optional user defaults for flags. Flags always
// win; the config file only changes what "unset" means.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user defaults from ~/.config/arbor/config.yaml and the
// ARBOR_* environment.
type Config struct {
	Icons       bool
	Editor      string
	ExpandLevel int
	Gitignore   bool
}

// Load reads the config file from the given directories, defaulting to
// the user config dir. A missing file yields the zero defaults.
func Load(dirs ...string) Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(dirs) == 0 {
		if base, err := os.UserConfigDir(); err == nil {
			dirs = []string{filepath.Join(base, "arbor")}
		}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("ARBOR")
	v.AutomaticEnv()

	v.SetDefault("icons", false)
	v.SetDefault("editor", "")
	v.SetDefault("expand_level", 0)
	v.SetDefault("gitignore", false)

	// The file is optional; parse errors fall back to defaults too.
	_ = v.ReadInConfig()

	return Config{
		Icons:       v.GetBool("icons"),
		Editor:      v.GetString("editor"),
		ExpandLevel: v.GetInt("expand_level"),
		Gitignore:   v.GetBool("gitignore"),
	}
}
