package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for window tracking, capture, the
// perception client and app behavior. Fields may be loaded from a JSON
// file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Window tracking: the emulator window and the insets that crop the
	// capture region down to the playfield.
	WindowTitle string `json:"window_title"`
	InsetTop    int    `json:"inset_top"`
	InsetLeft   int    `json:"inset_left"`
	TrimWidth   int    `json:"trim_width"`
	TrimHeight  int    `json:"trim_height"`

	// Capture loop pacing.
	CaptureIntervalMs int `json:"capture_interval_ms"`

	// Perception client (hosted detection model).
	ModelID       string  `json:"model_id"`
	APIKey        string  `json:"api_key"`
	MinConfidence float64 `json:"min_confidence"`

	// Snapshot persistence.
	DumpDir       string `json:"dump_dir"`
	AggregateDump bool   `json:"aggregate_dump"`

	// Debug HTTP server; empty disables it.
	ServerAddr string `json:"server_addr"`

	// Mouse/keyboard automation; off by default for safety.
	MouseControl bool `json:"mouse_control"`
}

// DefaultConfig returns a Config populated with standard defaults. The
// region insets match the BlueStacks chrome around the playfield.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		WindowTitle:       "BlueStacks App Player 1",
		InsetTop:          50,
		InsetLeft:         383,
		TrimWidth:         433,
		TrimHeight:        50,
		CaptureIntervalMs: 50,
		ModelID:           "troop-counter/7",
		APIKey:            "",
		MinConfidence:     0.40,
		DumpDir:           "dumps",
		AggregateDump:     true,
		ServerAddr:        "",
		MouseControl:      false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowTitle == "" {
		c.WindowTitle = "BlueStacks App Player 1"
	}
	if c.InsetTop < 0 {
		c.InsetTop = 0
	}
	if c.InsetLeft < 0 {
		c.InsetLeft = 0
	}
	if c.TrimWidth < 0 {
		c.TrimWidth = 0
	}
	if c.TrimHeight < 0 {
		c.TrimHeight = 0
	}
	if c.CaptureIntervalMs <= 0 {
		c.CaptureIntervalMs = 50
	}
	if c.ModelID == "" {
		c.ModelID = "troop-counter/7"
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		c.MinConfidence = 0.40
	}
	if c.DumpDir == "" {
		c.DumpDir = "dumps"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
