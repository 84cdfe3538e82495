package common

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type ProtocolStyle struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type ChartConfig struct {
	Backend     string  `yaml:"backend"`
	WidthInch   float64 `yaml:"width_inch"`
	HeightInch  float64 `yaml:"height_inch"`
	DPI         int     `yaml:"dpi"`
	SortByNodes bool    `yaml:"sort_by_nodes"`
}

type LoggerConfig struct {
	Mode     string `yaml:"mode"` // development or production
	Level    string `yaml:"level"`
	Filename string `yaml:"filename"`
}

type Config struct {
	Input     string          `yaml:"input"`
	OutputDir string          `yaml:"output_dir"`
	Workers   int             `yaml:"workers"`
	ExportCSV bool            `yaml:"export_csv"`
	Summary   bool            `yaml:"summary"`
	Protocols []ProtocolStyle `yaml:"protocols"`
	Chart     ChartConfig     `yaml:"chart"`
	Logger    LoggerConfig    `yaml:"logger"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:     "manet-results.csv",
		OutputDir: ".",
		Workers:   1,
		Protocols: []ProtocolStyle{
			{Name: "aodv", Color: "#1f77b4"},
			{Name: "dsdv", Color: "#ff7f0e"},
			{Name: "olsr", Color: "#2ca02c"},
		},
		Chart: ChartConfig{
			Backend:    "gonum",
			WidthInch:  6.4,
			HeightInch: 4.8,
			DPI:        300,
		},
		Logger: LoggerConfig{
			Mode:  "development",
			Level: "warn",
		},
	}
}

//defaults overlaid with the yaml file at path
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.Wrap(ErrInvalidConfig, "input path is empty")
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Chart.DPI <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "dpi must be positive, got %d", c.Chart.DPI)
	}
	if c.Chart.WidthInch <= 0 || c.Chart.HeightInch <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "chart size %vx%v in", c.Chart.WidthInch, c.Chart.HeightInch)
	}
	if len(c.Protocols) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no protocols to plot")
	}
	seen := make(map[string]bool, len(c.Protocols))
	for _, p := range c.Protocols {
		if p.Name == "" {
			return errors.Wrap(ErrInvalidConfig, "protocol with empty name")
		}
		if seen[p.Name] {
			return errors.Wrapf(ErrInvalidConfig, "protocol %s listed twice", p.Name)
		}
		seen[p.Name] = true
		if _, err := ParseColor(p.Color); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) ProtocolNames() []string {
	names := make([]string, len(c.Protocols))
	for i, p := range c.Protocols {
		names[i] = p.Name
	}
	return names
}

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

//ParseColor accepts "#rrggbb" or "rrggbb"
func ParseColor(s string) (drawing.Color, error) {
	if !hexColor.MatchString(s) {
		return drawing.Color{}, errors.Wrapf(ErrInvalidConfig, "bad colour %q", s)
	}
	if s[0] == '#' {
		s = s[1:]
	}
	return drawing.ColorFromHex(s), nil
}
