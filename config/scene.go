package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/xrmotion/interp"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by every scene validation error.
var ErrInvalidScene = errors.New("invalid scene")

// SceneDef describes a viewer and the subjects around it.
type SceneDef struct {
	Name     string       `yaml:"name"`
	Viewer   ViewerDef    `yaml:"viewer"`
	Subjects []SubjectDef `yaml:"subjects"`
}

// ViewerDef describes the local viewer. Camera defaults to true.
type ViewerDef struct {
	Position          []float64   `yaml:"position"`
	Camera            *bool       `yaml:"camera"`
	Waypoints         [][]float64 `yaml:"waypoints"`
	FramesPerWaypoint int         `yaml:"frames_per_waypoint"`
}

// SubjectDef describes an object placed in the scene.
type SubjectDef struct {
	Name     string     `yaml:"name"`
	Position []float64  `yaml:"position"`
	Yaw      float64    `yaml:"yaw"` // degrees around the world up axis
	LookAt   *LookAtDef `yaml:"look_at"`
	Tint     string     `yaml:"tint"`
	Fade     *FadeDef   `yaml:"fade"`
}

// LookAtDef configures a look-at behaviour. Unset flags fall back to the
// LookAt defaults, and a named preset overrides the flags entirely.
type LookAtDef struct {
	Preset          string `yaml:"preset"`
	AllowVertical   *bool  `yaml:"allow_vertical"`
	AllowHorizontal *bool  `yaml:"allow_horizontal"`
	InvertedForward *bool  `yaml:"inverted_forward"`
	OnlyOnce        *bool  `yaml:"only_once"`
	OneShot         bool   `yaml:"one_shot"` // orient once at spawn without attaching a behaviour
}

// FadeDef configures a color fade from the subject tint.
type FadeDef struct {
	To         string   `yaml:"to"`
	Duration   float32  `yaml:"duration"` // seconds
	Easing     string   `yaml:"easing"`
	Step       bool     `yaml:"step"`
	SmoothDamp *float64 `yaml:"smooth_damp"` // defaults to Interp.SmoothDamp
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*SceneDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return scene, nil
}

// ParseScene decodes and validates a YAML scene description.
func ParseScene(data []byte) (*SceneDef, error) {
	var scene SceneDef
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Validate checks every vector, color and easing in the scene.
func (s *SceneDef) Validate() error {
	if _, err := s.Viewer.Origin(); err != nil {
		return fmt.Errorf("%w: viewer: %v", ErrInvalidScene, err)
	}
	if _, err := s.Viewer.Path(); err != nil {
		return fmt.Errorf("%w: viewer: %v", ErrInvalidScene, err)
	}
	if s.Viewer.FramesPerWaypoint < 0 {
		return fmt.Errorf("%w: viewer: negative frames_per_waypoint", ErrInvalidScene)
	}

	seen := make(map[string]bool, len(s.Subjects))
	for i, sub := range s.Subjects {
		if sub.Name == "" {
			return fmt.Errorf("%w: subject %d has no name", ErrInvalidScene, i)
		}
		if seen[sub.Name] {
			return fmt.Errorf("%w: duplicate subject %q", ErrInvalidScene, sub.Name)
		}
		seen[sub.Name] = true

		if err := sub.validate(); err != nil {
			return fmt.Errorf("%w: subject %q: %v", ErrInvalidScene, sub.Name, err)
		}
	}
	return nil
}

func (s SubjectDef) validate() error {
	if _, err := s.Origin(); err != nil {
		return err
	}
	if _, err := s.TintColor(); err != nil {
		return err
	}
	if s.Fade == nil {
		return nil
	}
	if s.Fade.Duration < 0 {
		return errors.New("fade duration must not be negative")
	}
	if _, err := interp.ParseHexColor(s.Fade.To); err != nil {
		return err
	}
	if _, err := interp.EasingByName(s.Fade.Easing); err != nil {
		return err
	}
	return nil
}

// HasCamera reports whether the viewer has a camera attached.
func (v ViewerDef) HasCamera() bool {
	return v.Camera == nil || *v.Camera
}

// Origin returns the viewer's starting position.
func (v ViewerDef) Origin() (mgl64.Vec3, error) {
	return ParseVec3(v.Position)
}

// Path returns the waypoints the viewer travels through, in order.
func (v ViewerDef) Path() ([]mgl64.Vec3, error) {
	path := make([]mgl64.Vec3, 0, len(v.Waypoints))
	for i, wp := range v.Waypoints {
		p, err := ParseVec3(wp)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: %w", i, err)
		}
		path = append(path, p)
	}
	return path, nil
}

// Origin returns the subject position.
func (s SubjectDef) Origin() (mgl64.Vec3, error) {
	return ParseVec3(s.Position)
}

// TintColor returns the starting tint, defaulting to Interp.DefaultTint.
func (s SubjectDef) TintColor() (interp.Color, error) {
	if s.Tint == "" {
		return Interp.DefaultTint, nil
	}
	return interp.ParseHexColor(s.Tint)
}

// Axes resolves the allowed rotations against the LookAt defaults.
func (l LookAtDef) Axes() (allowVertical, allowHorizontal bool) {
	return boolOr(l.AllowVertical, LookAt.AllowRotateAroundVertical), boolOr(l.AllowHorizontal, LookAt.AllowRotateAroundHorizontal)
}

// Flags resolves the forward inversion and fire-once flags against the LookAt defaults.
func (l LookAtDef) Flags() (invertedForward, onlyOnce bool) {
	return boolOr(l.InvertedForward, LookAt.InvertedForwardAxis), boolOr(l.OnlyOnce, LookAt.OnlyOnce)
}

// Damping returns the fade smoothing, defaulting to Interp.SmoothDamp.
func (f FadeDef) Damping() float64 {
	if f.SmoothDamp == nil {
		return Interp.SmoothDamp
	}
	return *f.SmoothDamp
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// ParseVec3 converts a YAML sequence into a vector. An empty sequence is the origin.
func ParseVec3(v []float64) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return mgl64.Vec3{}, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("vector needs 3 components, got %d", len(v))
}
