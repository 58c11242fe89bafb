package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/midbel/barchart"
)

var ErrInvalid = errors.New("invalid configuration")

type Margin struct {
	Top    float64 `yaml:"top" json:"top" toml:"top" env:"BARCHART_MARGIN_TOP" env-default:"40"`
	Right  float64 `yaml:"right" json:"right" toml:"right" env:"BARCHART_MARGIN_RIGHT" env-default:"140"`
	Bottom float64 `yaml:"bottom" json:"bottom" toml:"bottom" env:"BARCHART_MARGIN_BOTTOM" env-default:"100"`
	Left   float64 `yaml:"left" json:"left" toml:"left" env:"BARCHART_MARGIN_LEFT" env-default:"60"`
}

type Durations struct {
	Enter time.Duration `yaml:"enter" json:"enter" toml:"enter" env:"BARCHART_DURATION_ENTER" env-default:"800ms"`
	Exit  time.Duration `yaml:"exit" json:"exit" toml:"exit" env:"BARCHART_DURATION_EXIT" env-default:"400ms"`
	Fade  time.Duration `yaml:"fade" json:"fade" toml:"fade" env:"BARCHART_DURATION_FADE" env-default:"150ms"`
}

type Legend struct {
	Swatch  float64 `yaml:"swatch" json:"swatch" toml:"swatch" env:"BARCHART_LEGEND_SWATCH" env-default:"14"`
	Spacing float64 `yaml:"spacing" json:"spacing" toml:"spacing" env:"BARCHART_LEGEND_SPACING" env-default:"20"`
}

type Config struct {
	Title   string   `yaml:"title" json:"title" toml:"title" env:"BARCHART_TITLE"`
	Width   float64  `yaml:"width" json:"width" toml:"width" env:"BARCHART_WIDTH" env-default:"800"`
	Height  float64  `yaml:"height" json:"height" toml:"height" env:"BARCHART_HEIGHT" env-default:"450"`
	Padding float64  `yaml:"padding" json:"padding" toml:"padding" env:"BARCHART_PADDING" env-default:"0.1"`
	Ticks   int      `yaml:"ticks" json:"ticks" toml:"ticks" env:"BARCHART_TICKS" env-default:"10"`
	// Palette lists colors or holds the name of a builtin palette.
	Palette []string `yaml:"palette" json:"palette" toml:"palette" env:"BARCHART_PALETTE" env-separator:","`

	Margin    Margin    `yaml:"margin" json:"margin" toml:"margin"`
	Durations Durations `yaml:"durations" json:"durations" toml:"durations"`
	Legend    Legend    `yaml:"legend" json:"legend" toml:"legend"`
}

func Default() Config {
	return Config{
		Width:   barchart.DefaultWidth,
		Height:  barchart.DefaultHeight,
		Padding: barchart.DefaultBandPadding,
		Ticks:   barchart.DefaultTicks,
		Palette: append([]string{}, barchart.Tableau10...),
		Margin: Margin{
			Top:    barchart.DefaultPadding.Top,
			Right:  barchart.DefaultPadding.Right,
			Bottom: barchart.DefaultPadding.Bottom,
			Left:   barchart.DefaultPadding.Left,
		},
		Durations: Durations{
			Enter: barchart.DefaultEnterDuration,
			Exit:  barchart.DefaultExitDuration,
			Fade:  barchart.DefaultFadeDuration,
		},
		Legend: Legend{
			Swatch:  barchart.DefaultSwatchSize,
			Spacing: barchart.DefaultRowSpacing,
		},
	}
}

// Load reads the configuration file at path, when given, then the
// BARCHART_* environment variables. Settings missing from both take their
// default value.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, err
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	var list []string
	for _, p := range c.Palette {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 1 {
		if p, ok := barchart.LookupPalette(list[0]); ok {
			list = append([]string{}, p...)
		}
	}
	c.Palette = list
	if len(c.Palette) == 0 {
		c.Palette = append(c.Palette, barchart.Tableau10...)
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: chart size must be positive (%gx%g)", ErrInvalid, c.Width, c.Height)
	case c.Width-c.Margin.Left-c.Margin.Right <= 0:
		return fmt.Errorf("%w: margins leave no horizontal space", ErrInvalid)
	case c.Height-c.Margin.Top-c.Margin.Bottom <= 0:
		return fmt.Errorf("%w: margins leave no vertical space", ErrInvalid)
	case c.Padding < 0 || c.Padding >= 1:
		return fmt.Errorf("%w: band padding must be in [0, 1)", ErrInvalid)
	case c.Ticks <= 0:
		return fmt.Errorf("%w: ticks must be positive", ErrInvalid)
	case c.Durations.Enter < 0 || c.Durations.Exit < 0 || c.Durations.Fade < 0:
		return fmt.Errorf("%w: durations can not be negative", ErrInvalid)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalid)
	}
	return nil
}

func (c Config) Layout() barchart.Layout {
	return barchart.Layout{
		Width:  c.Width,
		Height: c.Height,
		Padding: barchart.Padding{
			Top:    c.Margin.Top,
			Right:  c.Margin.Right,
			Bottom: c.Margin.Bottom,
			Left:   c.Margin.Left,
		},
	}
}

// Chart creates a chart with the settings of c.
func (c Config) Chart() *barchart.Chart {
	ch := barchart.New()
	ch.Title = c.Title
	ch.Layout = c.Layout()
	ch.Palette = barchart.Palette(c.Palette)
	ch.BandPadding = c.Padding
	ch.Ticks = c.Ticks
	ch.Legend.Swatch = c.Legend.Swatch
	ch.Legend.Spacing = c.Legend.Spacing
	ch.Tooltip = barchart.NewTooltip(c.Durations.Fade)
	ch.SetDurations(c.Durations.Enter, c.Durations.Exit)
	return ch
}
