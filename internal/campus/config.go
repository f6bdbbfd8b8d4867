package campus

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"campus-viewer/internal/geom"
)

//go:embed campus.yaml
var defaultConfig []byte

// Config is the static campus configuration as read from YAML.
type Config struct {
	Shell      string        `yaml:"shell"`
	Background string        `yaml:"background"`
	Transition string        `yaml:"transition"`
	Camera     CameraConfig  `yaml:"camera"`
	Start      PoseConfig    `yaml:"start"`
	Home       PoseConfig    `yaml:"home"`
	Lights     LightConfig   `yaml:"lights"`
	Theme      ThemeConfig   `yaml:"theme"`
	Assets     []AssetConfig `yaml:"assets"`
	Rooms      []RoomConfig  `yaml:"rooms"`
}

// CameraConfig is the projection and orbit limits. FovY is vertical, in degrees.
type CameraConfig struct {
	FovY        float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Damping     float32 `yaml:"damping"`
}

// PoseConfig is a pose as written in YAML: two [x, y, z] triples.
type PoseConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
}

// Pose converts the YAML form to a Pose.
func (p PoseConfig) Pose() Pose {
	return Pose{Eye: geom.FromArray(p.Eye), Target: geom.FromArray(p.Target)}
}

// LightConfig sets ambient and directional intensities. Direction points toward the light.
type LightConfig struct {
	Ambient     float32    `yaml:"ambient"`
	Directional float32    `yaml:"directional"`
	Direction   [3]float32 `yaml:"direction"`
}

// ThemeConfig holds #RGB / #RRGGBB colours for the overlay panels and buttons, and an
// optional font family searched for under assets/fonts.
type ThemeConfig struct {
	Font             string `yaml:"font,omitempty"`
	PanelBackground  string `yaml:"panel_background"`
	PanelText        string `yaml:"panel_text"`
	ButtonBackground string `yaml:"button_background"`
	ButtonHover      string `yaml:"button_hover"`
	ButtonText       string `yaml:"button_text"`
}

// AssetConfig names one 3D asset. Name becomes the top-level scene node name.
type AssetConfig struct {
	Name string `yaml:"name"`
	URI  string `yaml:"uri"`
}

// RoomConfig describes one room. ID must parse as a room number; View is optional.
type RoomConfig struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Directions  string      `yaml:"directions"`
	View        *PoseConfig `yaml:"view,omitempty"`
}

// Default returns the embedded reference configuration.
func Default() (*Config, error) {
	return Parse(defaultConfig)
}

// Load reads the configuration at path. An empty path loads the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campus config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing campus config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating campus config: %w", err)
	}
	return &c, nil
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.Shell == "" {
		el.Add(fmt.Errorf("shell is required"))
	}

	d, err := time.ParseDuration(c.Transition)
	if err != nil {
		el.Add(fmt.Errorf("parsing transition: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("transition must be positive"))
	}

	el.Add(c.Camera.Validate())

	assets := make(map[string]bool, len(c.Assets))
	for i, a := range c.Assets {
		if a.Name == "" || a.URI == "" {
			el.Add(fmt.Errorf("asset %d: name and uri are required", i))
			continue
		}
		if assets[a.Name] {
			el.Add(fmt.Errorf("asset %d: duplicate name %q", i, a.Name))
		}
		assets[a.Name] = true
	}
	if c.Shell != "" && !assets[c.Shell] {
		el.Add(fmt.Errorf("shell %q has no asset", c.Shell))
	}

	seen := make(map[RoomID]bool, len(c.Rooms))
	for i, r := range c.Rooms {
		id, ok := ParseRoomID(r.ID)
		if !ok {
			el.Add(fmt.Errorf("room %d: unknown id %q", i, r.ID))
			continue
		}
		if seen[id] {
			el.Add(fmt.Errorf("room %d: duplicate id %q", i, r.ID))
		}
		seen[id] = true
		if !assets[r.ID] {
			el.Add(fmt.Errorf("room %d: %q has no asset", i, r.ID))
		}
	}

	return el.Err()
}

// Validate checks the projection and orbit ranges.
func (c *CameraConfig) Validate() error {
	el := errors.NewErrorList()

	if c.FovY <= 0 || c.FovY >= 180 {
		el.Add(fmt.Errorf("camera fov must be between 0 and 180"))
	}
	if c.Near <= 0 || c.Far <= c.Near {
		el.Add(fmt.Errorf("camera near/far must satisfy 0 < near < far"))
	}
	if c.MinDistance < 0 || c.MaxDistance < c.MinDistance {
		el.Add(fmt.Errorf("camera min/max distance must satisfy 0 <= min <= max"))
	}
	if c.Damping < 0 || c.Damping > 1 {
		el.Add(fmt.Errorf("camera damping must be between 0 and 1"))
	}

	return el.Err()
}

// TransitionDuration returns the parsed camera transition duration. Call after Validate.
func (c *Config) TransitionDuration() time.Duration {
	d, err := time.ParseDuration(c.Transition)
	if err != nil {
		return time.Second
	}
	return d
}

// Lens returns the camera projection.
func (c *Config) Lens() geom.Lens {
	return geom.Lens{FovY: c.Camera.FovY, Near: c.Camera.Near, Far: c.Camera.Far}
}

// AssetURIs returns asset name to URI.
func (c *Config) AssetURIs() map[string]string {
	out := make(map[string]string, len(c.Assets))
	for _, a := range c.Assets {
		out[a.Name] = a.URI
	}
	return out
}

// Registry builds the room registry from the configured rooms.
func (c *Config) Registry() *Registry {
	info := make(map[RoomID]Info, len(c.Rooms))
	poses := make(map[RoomID]Pose, len(c.Rooms))
	for _, r := range c.Rooms {
		id, ok := ParseRoomID(r.ID)
		if !ok {
			continue
		}
		info[id] = Info{Description: r.Description, Directions: r.Directions}
		if r.View != nil {
			poses[id] = r.View.Pose()
		}
	}
	return NewRegistry(info, poses)
}
