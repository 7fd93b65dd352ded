package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the session configuration for a stimulus run. Fields may be
// loaded from a JSON file and are treated as immutable once the render loop
// starts.
type Config struct {
	Debug bool `json:"debug"`

	Display      Display      `json:"display"`
	Eccentricity RingMapping  `json:"eccentricity_mapping"`
	PolarAngle   WedgeMapping `json:"polar_angle_mapping"`
	Sequence     ImgSequence  `json:"img_sequence"`
	Checkerboard Checkerboard `json:"checkerboard_texture"`
	FocusPoint   FocusPoint   `json:"focus_point"`
	Control      Control      `json:"control"`
	Render       Render       `json:"render"`
}

// Display selects the target screen and window geometry.
type Display struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	ScreenID int `json:"screen_id"`
}

// RingMapping parameterizes the expanding-ring (eccentricity) stimulus.
// The ring center radius sweeps MinRadius..MaxRadius once per Duration seconds.
type RingMapping struct {
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	Width     float64 `json:"width"`
	Duration  float64 `json:"duration"`
}

// WedgeMapping parameterizes the rotating-wedge (polar angle) stimulus.
// The wedge center angle sweeps 0..360 degrees once per Duration seconds.
type WedgeMapping struct {
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	Width     float64 `json:"width"` // angular width in degrees
	Duration  float64 `json:"duration"`
}

// ImgSequence parameterizes the image-sequence stimulus. One trial is
// PaddingBefore + Duration + PaddingAfter seconds; the image fades in after
// PaddingBefore and fades out after PaddingBefore+Duration.
type ImgSequence struct {
	Directory     string  `json:"directory"`
	PaddingBefore float64 `json:"padding_before"`
	Duration      float64 `json:"duration"`
	PaddingAfter  float64 `json:"padding_after"`
}

// Checkerboard parameterizes the flickering checkerboard texture shared by the
// ring and wedge stimuli.
type Checkerboard struct {
	NumInLongitude int     `json:"num_in_longitude"` // angular sectors
	NumInLatitude  int     `json:"num_in_latitude"`  // radial bands
	FlickingRate   float64 `json:"flicking_rate"`    // Hz
}

// FocusPoint parameterizes the central fixation dot. Colors cycle at random
// intervals drawn from [TMin, TMax] seconds; the schedule is fixed by Seed so
// a run can be reproduced from its log.
type FocusPoint struct {
	Toggled bool     `json:"toggled"`
	Radius  int      `json:"radius"`
	Colors  []string `json:"colors"` // hex, e.g. "#ff0000"
	TMin    float64  `json:"t_min"`
	TMax    float64  `json:"t_max"`
	Seed    int64    `json:"seed"`
}

// Control names the logical key actions.
type Control struct {
	QuitKey  string `json:"quit_key"`
	StartKey string `json:"start_key"`
}

// Render tunes the loop itself; none of these affect stimulus content.
type Render struct {
	// ReportInterval is the first frame-rate report deadline in seconds.
	// Subsequent deadlines double.
	ReportInterval float64 `json:"report_interval"`
	// MinFrameInterval optionally caps the loop rate (seconds between
	// generate calls). Zero means uncapped.
	MinFrameInterval float64 `json:"min_frame_interval"`
	// CacheFrames enables the per-cycle frame cache for periodic stimuli.
	CacheFrames bool `json:"cache_frames"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Display: Display{Width: 800, Height: 600, ScreenID: 0},
		Eccentricity: RingMapping{
			MinRadius: 50,
			MaxRadius: 150,
			Width:     10,
			Duration:  4,
		},
		PolarAngle: WedgeMapping{
			MinRadius: 50,
			MaxRadius: 150,
			Width:     30,
			Duration:  4,
		},
		Sequence: ImgSequence{
			PaddingBefore: 0.5,
			Duration:      1.0,
			PaddingAfter:  0.5,
		},
		Checkerboard: Checkerboard{
			NumInLongitude: 24,
			NumInLatitude:  6,
			FlickingRate:   4,
		},
		FocusPoint: FocusPoint{
			Toggled: true,
			Radius:  5,
			Colors:  []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"},
			TMin:    1,
			TMax:    3,
			Seed:    1,
		},
		Control: Control{QuitKey: "Escape", StartKey: "s"},
		Render:  Render{ReportInterval: 2},
	}
}

// Validate rejects configurations that would produce a meaningless stimulus.
// It runs once at startup, before the render loop exists; an error here is
// fatal.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display: invalid geometry %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.ScreenID < 0 {
		return fmt.Errorf("display: negative screen id %d", c.Display.ScreenID)
	}
	if err := validateAnnulus("eccentricity_mapping", c.Eccentricity.MinRadius, c.Eccentricity.MaxRadius, c.Eccentricity.Duration); err != nil {
		return err
	}
	if c.Eccentricity.Width <= 0 {
		return fmt.Errorf("eccentricity_mapping: ring width must be positive, got %v", c.Eccentricity.Width)
	}
	if err := validateAnnulus("polar_angle_mapping", c.PolarAngle.MinRadius, c.PolarAngle.MaxRadius, c.PolarAngle.Duration); err != nil {
		return err
	}
	if c.PolarAngle.Width <= 0 || c.PolarAngle.Width > 360 {
		return fmt.Errorf("polar_angle_mapping: wedge width must be in (0, 360], got %v", c.PolarAngle.Width)
	}
	if c.Sequence.Duration <= 0 {
		return fmt.Errorf("img_sequence: duration must be positive, got %v", c.Sequence.Duration)
	}
	if c.Sequence.PaddingBefore < 0 || c.Sequence.PaddingAfter < 0 {
		return fmt.Errorf("img_sequence: negative padding")
	}
	if c.Checkerboard.NumInLongitude <= 0 || c.Checkerboard.NumInLatitude <= 0 {
		return fmt.Errorf("checkerboard_texture: sector counts must be positive")
	}
	if c.Checkerboard.FlickingRate < 0 {
		return fmt.Errorf("checkerboard_texture: negative flicking rate %v", c.Checkerboard.FlickingRate)
	}
	if c.FocusPoint.Toggled {
		if c.FocusPoint.Radius <= 0 {
			return fmt.Errorf("focus_point: radius must be positive, got %d", c.FocusPoint.Radius)
		}
		if len(c.FocusPoint.Colors) < 2 {
			return fmt.Errorf("focus_point: need at least two colors to alternate, got %d", len(c.FocusPoint.Colors))
		}
		if c.FocusPoint.TMin <= 0 || c.FocusPoint.TMax < c.FocusPoint.TMin {
			return fmt.Errorf("focus_point: invalid change interval [%v, %v]", c.FocusPoint.TMin, c.FocusPoint.TMax)
		}
	}
	if c.Render.ReportInterval <= 0 {
		c.Render.ReportInterval = 2
	}
	if c.Render.MinFrameInterval < 0 {
		c.Render.MinFrameInterval = 0
	}
	return nil
}

func validateAnnulus(section string, min, max, duration float64) error {
	if min < 0 {
		return fmt.Errorf("%s: negative min radius %v", section, min)
	}
	if max <= min {
		return fmt.Errorf("%s: max radius %v must exceed min radius %v", section, max, min)
	}
	if duration <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %v", section, duration)
	}
	return nil
}

// Load reads configuration from the given JSON file path. A missing file
// yields DefaultConfig(). The returned config is always validated.
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
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
