package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/controller"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// PlayerFile is the prefab the game and the simulator load by default.
const PlayerFile = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name string `yaml:"name"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	SkinWidth          float64 `yaml:"skin_width"`
	HorizontalRayCount int     `yaml:"horizontal_ray_count"`
	VerticalRayCount   int     `yaml:"vertical_ray_count"`
	MaxClimbAngle      float64 `yaml:"max_climb_angle"`
	MaxDescendAngle    float64 `yaml:"max_descend_angle"`
	CollisionMask      uint    `yaml:"collision_mask"`

	JumpHeight          float64   `yaml:"jump_height"`
	TimeToApex          float64   `yaml:"time_to_apex"`
	MoveSpeed           float64   `yaml:"move_speed"`
	AccelTimeGrounded   float64   `yaml:"accel_time_grounded"`
	AccelTimeAirborne   float64   `yaml:"accel_time_airborne"`
	WeaponActiveSeconds float64   `yaml:"weapon_active_seconds"`
	Teleport            PointSpec `yaml:"teleport"`

	Animation AnimationSpec `yaml:"animation"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AnimationSpec struct {
	FrameW int                 `yaml:"frame_w"`
	FrameH int                 `yaml:"frame_h"`
	Clips  map[string]ClipSpec `yaml:"clips"`
}

// ClipSpec describes one animation. EndFrame is the frame a looping clip
// jumps back to after its last frame.
type ClipSpec struct {
	Frames   int       `yaml:"frames"`
	FPS      float64   `yaml:"fps"`
	Loop     bool      `yaml:"loop"`
	EndFrame int       `yaml:"end_frame"`
	Color    YAMLColor `yaml:"color"`
}

// DefaultPlayerSpec mirrors character.DefaultConfig. Keys missing from a
// prefab keep these values.
func DefaultPlayerSpec() PlayerSpec {
	cfg := character.DefaultConfig()
	return PlayerSpec{
		Name:                "player",
		Width:               cfg.Width,
		Height:              cfg.Height,
		SkinWidth:           cfg.Controller.SkinWidth,
		HorizontalRayCount:  cfg.Controller.HorizontalRayCount,
		VerticalRayCount:    cfg.Controller.VerticalRayCount,
		MaxClimbAngle:       cfg.Controller.MaxClimbAngle,
		MaxDescendAngle:     cfg.Controller.MaxDescendAngle,
		CollisionMask:       cfg.Controller.CollisionMask,
		JumpHeight:          cfg.JumpHeight,
		TimeToApex:          cfg.TimeToApex,
		MoveSpeed:           cfg.MoveSpeed,
		AccelTimeGrounded:   cfg.AccelTimeGrounded,
		AccelTimeAirborne:   cfg.AccelTimeAirborne,
		WeaponActiveSeconds: cfg.WeaponActive.Seconds(),
		Teleport:            PointSpec{X: cfg.Teleport.X, Y: cfg.Teleport.Y},
	}
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	if filename == "" {
		filename = PlayerFile
	}
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParsePlayerSpec(filename, data)
}

func ParsePlayerSpec(filename string, data []byte) (*PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

func (s PlayerSpec) Validate() error {
	if err := s.Config().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	for name, clip := range s.Animation.Clips {
		switch {
		case clip.Frames <= 0:
			return fmt.Errorf("%w: clip %s has %d frames", ErrInvalidSpec, name, clip.Frames)
		case !(clip.FPS > 0):
			return fmt.Errorf("%w: clip %s fps %v", ErrInvalidSpec, name, clip.FPS)
		case clip.EndFrame < 0 || clip.EndFrame >= clip.Frames:
			return fmt.Errorf("%w: clip %s end frame %d out of range", ErrInvalidSpec, name, clip.EndFrame)
		}
	}
	return nil
}

// Config converts the prefab to character tuning.
func (s PlayerSpec) Config() character.Config {
	return character.Config{
		Controller: controller.Config{
			SkinWidth:          s.SkinWidth,
			HorizontalRayCount: s.HorizontalRayCount,
			VerticalRayCount:   s.VerticalRayCount,
			MaxClimbAngle:      s.MaxClimbAngle,
			MaxDescendAngle:    s.MaxDescendAngle,
			CollisionMask:      s.CollisionMask,
		},
		Width:             s.Width,
		Height:            s.Height,
		JumpHeight:        s.JumpHeight,
		TimeToApex:        s.TimeToApex,
		MoveSpeed:         s.MoveSpeed,
		AccelTimeGrounded: s.AccelTimeGrounded,
		AccelTimeAirborne: s.AccelTimeAirborne,
		WeaponActive:      time.Duration(s.WeaponActiveSeconds * float64(time.Second)),
		Teleport:          cp.Vector{X: s.Teleport.X, Y: s.Teleport.Y},
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
