package apkin

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is apkin's optional YAML configuration file.
type Config struct {
	// AAPT and Keytool override where the external tools are found.
	AAPT    string `yaml:"aapt,omitempty"`
	Keytool string `yaml:"keytool,omitempty"`
	// Locales orders which localized application label is preferred
	// when an APK carries several.
	Locales []string `yaml:"locales,omitempty"`
}

// LoadConfig reads the config at name. A missing file is not an
// error; it yields the zero config.
func LoadConfig(name string) (*Config, error) {
	config := &Config{}

	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// InspectOpts translates the config into options for Inspect.
func (c *Config) InspectOpts() []InspectOpt {
	opts := []InspectOpt{}

	if c.AAPT != "" {
		opts = append(opts, WithAAPT(c.AAPT))
	}

	if c.Keytool != "" {
		opts = append(opts, WithKeytool(c.Keytool))
	}

	return opts
}
