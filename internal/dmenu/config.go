package dmenu

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds menu display options loaded from the optional config file.
// Every key in the [dmenu] table is passed through to the menu program as a
// "-key value" pair, except for the reserved keys consumed by netmenu itself.
type Config struct {
	Dmenu map[string]string `toml:"dmenu"`
}

// Reserved [dmenu] keys that configure netmenu rather than the menu program.
const (
	keyProgram         = "program"
	keyPassphraseFlags = "passphrase_flags"
)

// DefaultConfigPath returns the conventional config file location,
// honouring XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "netmenu", "config.toml")
}

// LoadConfig loads the config file at path. A missing file is not an error;
// it yields an empty config and the menu program runs with only the built-in
// flags.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Program returns the configured menu program, or the empty string.
func (c Config) Program() string {
	return c.Dmenu[keyProgram]
}

// PassphraseFlags returns extra flags for the passphrase prompt (e.g. rofi's
// "-password"), split on whitespace.
func (c Config) PassphraseFlags() []string {
	return strings.Fields(c.Dmenu[keyPassphraseFlags])
}

// ExtraArgs translates the remaining key/value pairs into flag arguments for
// the menu invocation, in stable key order.
func (c Config) ExtraArgs() []string {
	keys := make([]string, 0, len(c.Dmenu))
	for k := range c.Dmenu {
		if k == keyProgram || k == keyPassphraseFlags {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, "-"+k, c.Dmenu[k])
	}
	return args
}
