package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Input     Input    `yaml:"input"`
	Output    Output   `yaml:"output"`
	Greetings []string `yaml:"greetings"`
	Logging   Logging  `yaml:"logging"`
}

type Input struct {
	Path         string `yaml:"path"`
	Delimiter    string `yaml:"delimiter"`
	ReviewColumn string `yaml:"review_column"`
}

type Output struct {
	Dir       string `yaml:"dir"`
	ChartFile string `yaml:"chart_file"`
	LogFile   string `yaml:"log_file"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for reviewpulse.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "reviewpulse")
}

// LoadEnv loads an optional .env file into the process environment so
// REVIEWPULSE_* variables can override config values.
func LoadEnv() {
	_ = gotenv.Load()
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/reviewpulse/config.yaml > ./config.yaml.
// No config file is not an error; defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file. An empty path yields the
// built-in defaults. Environment overrides apply last.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Input: Input{
			Path:         "Restaurant_Reviews.tsv",
			Delimiter:    "\t",
			ReviewColumn: "Review",
		},
		Output: Output{
			Dir:       ".",
			ChartFile: "sentiment_pie_chart.png",
			LogFile:   "reviewpulse.log",
		},
		Greetings: []string{"hello", "hi", "hey", "greetings", "sup", "whats up"},
		Logging:   Logging{Level: "INFO"},
	}

	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("REVIEWPULSE_INPUT"); v != "" {
		c.Input.Path = v
	}
	if v := os.Getenv("REVIEWPULSE_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
}

// Comma returns the input field delimiter as a rune, tab by default.
func (c *Config) Comma() rune {
	for _, r := range c.Input.Delimiter {
		return r
	}
	return '\t'
}

// ChartPath returns the chart output path under the output directory.
func (c *Config) ChartPath() string {
	return filepath.Join(c.Output.Dir, c.Output.ChartFile)
}

// LogPath returns the run log path under the output directory.
func (c *Config) LogPath() string {
	return filepath.Join(c.Output.Dir, c.Output.LogFile)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
