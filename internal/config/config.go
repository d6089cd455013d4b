// Package config manages application configuration from files and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/klytics/apsheet/internal/placement"
)

// Config holds the application configuration.
type Config struct {
	Defaults placement.Defaults `mapstructure:"defaults"`
	Output   struct {
		Color bool `mapstructure:"color"`
	} `mapstructure:"output"`
}

// Load reads the configuration from ~/.apsheet/config.yaml and environment
// variables (APSHEET_ prefix). A missing config file is not an error — the
// shipped placement defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir())

	setDefaults()

	viper.SetEnvPrefix("APSHEET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	d := placement.StandardDefaults()
	viper.SetDefault("defaults.antenna_type", d.AntennaType)
	viper.SetDefault("defaults.antenna_vendor", d.AntennaVendor)
	viper.SetDefault("defaults.antenna_model", d.AntennaModel)
	viper.SetDefault("defaults.mount_type", d.MountType)
	viper.SetDefault("defaults.mounting_bracket", d.MountingBracket)
	viper.SetDefault("defaults.mounting_adapter", d.MountingAdapter)
	viper.SetDefault("defaults.in_enclosure", d.InEnclosure)
	viper.SetDefault("defaults.enclosure_model", d.EnclosureModel)
	viper.SetDefault("defaults.antenna_in_enclosure", d.AntennaInEnclosure)
	viper.SetDefault("defaults.direction", d.Direction)
	viper.SetDefault("defaults.downtilt", d.Downtilt)
	viper.SetDefault("output.color", true)
}

// Set updates a single config value and persists the file.
func Set(key, value string) error {
	viper.Set(key, value)
	return SaveConfig()
}

// Get retrieves a config value.
func Get(key string) string {
	return viper.GetString(key)
}

// SaveConfig writes the current config to ~/.apsheet/config.yaml.
func SaveConfig() error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// Init writes a commented config skeleton with the shipped placement
// defaults. It refuses to clobber an existing file.
func Init() (string, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists at %s — edit it directly or delete it first", path)
	}

	if err := os.MkdirAll(configDir(), 0700); err != nil {
		return path, fmt.Errorf("could not create config directory: %w", err)
	}

	skeleton := struct {
		Defaults placement.Defaults `yaml:"defaults"`
		Output   struct {
			Color bool `yaml:"color"`
		} `yaml:"output"`
	}{Defaults: placement.StandardDefaults()}
	skeleton.Output.Color = true

	body, err := yaml.Marshal(skeleton)
	if err != nil {
		return path, fmt.Errorf("could not render config: %w", err)
	}

	content := "# apsheet configuration.\n# Placement defaults filled into every generated row.\n" + string(body)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return path, fmt.Errorf("could not write config: %w", err)
	}
	return path, nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// ShowConfig returns a formatted string of the current configuration.
func ShowConfig() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Config: %s\n\n", ConfigPath()))
	sb.WriteString("Placement defaults\n")
	for _, key := range []string{
		"antenna_type", "antenna_vendor", "antenna_model",
		"mount_type", "mounting_bracket", "mounting_adapter",
		"in_enclosure", "enclosure_model", "antenna_in_enclosure",
		"direction", "downtilt",
	} {
		sb.WriteString(fmt.Sprintf("  %-22s%s\n", key+":", viper.GetString("defaults."+key)))
	}
	sb.WriteString("\nOutput\n")
	sb.WriteString(fmt.Sprintf("  %-22s%v\n", "color:", viper.GetBool("output.color")))

	return sb.String()
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".apsheet"
	}
	return filepath.Join(home, ".apsheet")
}
