package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all simulation and render settings.
type Config struct {
	Sim    SimConfig    `mapstructure:"sim"`
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
}

// SimConfig mirrors the live engine parameters.
type SimConfig struct {
	Cylinders int     `mapstructure:"cylinders"`
	RPM       float64 `mapstructure:"rpm"`
	SpeedKph  float64 `mapstructure:"speed_kph"`
	TimeScale float64 `mapstructure:"time_scale"`
}

// RenderConfig controls the offline frame pipeline.
type RenderConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Supersample int     `mapstructure:"supersample"`
	FPS         float64 `mapstructure:"fps"`
	DurationSec float64 `mapstructure:"duration_sec"`
	Workers     int     `mapstructure:"workers"`
	AssetDir    string  `mapstructure:"asset_dir"`
}

// OutputConfig names where results land.
type OutputConfig struct {
	WebP    string `mapstructure:"webp"`
	Dir     string `mapstructure:"dir"`
	TraceDB string `mapstructure:"trace_db"`
	CSV     string `mapstructure:"csv"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.cylinders", 4)
	v.SetDefault("sim.rpm", 2000.0)
	v.SetDefault("sim.speed_kph", 60.0)
	v.SetDefault("sim.time_scale", 1.0)

	v.SetDefault("render.width", 640)
	v.SetDefault("render.height", 400)
	v.SetDefault("render.supersample", 2)
	v.SetDefault("render.fps", 30.0)
	v.SetDefault("render.duration_sec", 4.0)
	v.SetDefault("render.workers", runtime.NumCPU())
	v.SetDefault("render.asset_dir", "")

	v.SetDefault("output.webp", "engine.webp")
	v.SetDefault("output.dir", "renders")
	v.SetDefault("output.trace_db", "trace.db")
	v.SetDefault("output.csv", "")
}

// Load builds the configuration from defaults, an optional config file
// (JSON, TOML or YAML, by extension) and ENGINEMOTION_* environment
// variables, in increasing precedence. path may be empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("enginemotion")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero/negative values mean "not set".
type Flags struct {
	Cylinders   int
	RPM         float64
	SpeedKph    float64
	TimeScale   float64
	Width       int
	Height      int
	Supersample int
	FPS         float64
	DurationSec float64
	Workers     int
	Output      string
	OutDir      string
}

// Resolve applies CLI flags on top of the loaded configuration. Flags
// take priority when set; the flag sentinel for the float fields is a
// negative value so an explicit zero (e.g. rpm=0) still wins.
func (c *Config) Resolve(flags Flags) {
	if flags.Cylinders > 0 {
		c.Sim.Cylinders = flags.Cylinders
	}
	if flags.RPM >= 0 {
		c.Sim.RPM = flags.RPM
	}
	if flags.SpeedKph >= 0 {
		c.Sim.SpeedKph = flags.SpeedKph
	}
	if flags.TimeScale >= 0 {
		c.Sim.TimeScale = flags.TimeScale
	}
	if flags.Width > 0 {
		c.Render.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Render.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Render.Supersample = flags.Supersample
	}
	if flags.FPS > 0 {
		c.Render.FPS = flags.FPS
	}
	if flags.DurationSec > 0 {
		c.Render.DurationSec = flags.DurationSec
	}
	if flags.Workers > 0 {
		c.Render.Workers = flags.Workers
	}
	if flags.Output != "" {
		c.Output.WebP = flags.Output
	}
	if flags.OutDir != "" {
		c.Output.Dir = flags.OutDir
	}
}
