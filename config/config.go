package config

import (
	"github.com/automoto/xrmotion/interp"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity is created on.
const Default ecs.LayerID = 0

// Config holds general simulation configuration
type Config struct {
	TPS int // Simulation ticks per second
}

// DeltaTime returns the fixed frame time in seconds.
func (c *Config) DeltaTime() float64 {
	if c.TPS <= 0 {
		return 0
	}
	return 1.0 / float64(c.TPS)
}

// ViewerConfig contains viewer (local camera) movement configuration
type ViewerConfig struct {
	EyeHeight         float64 // Camera height above the viewer origin
	FollowSmoothing   float64 // Smooth damp used while moving between waypoints (0.0-1.0)
	FramesPerWaypoint int     // Frames spent travelling to each waypoint
	ArriveDistance    float64 // Distance at which a waypoint counts as reached
}

// LookAtConfig contains the defaults applied to look-at behaviours
type LookAtConfig struct {
	AllowRotateAroundVertical   bool
	AllowRotateAroundHorizontal bool
	InvertedForwardAxis         bool
	OnlyOnce                    bool
}

// InterpConfig contains defaults for color fades and other transitions
type InterpConfig struct {
	DefaultEasing   string
	DefaultDuration float32 // seconds
	SmoothDamp      float64
	DefaultTint     interp.Color
}

// SimConfig contains defaults for the headless runner
type SimConfig struct {
	Frames   int  // Frames to simulate when not running in real time
	LogEvery int  // Log subject state every N frames (0 = never)
	Realtime bool // Tick on a wall-clock ticker instead of as fast as possible
}

// PersistenceConfig contains settings storage configuration
type PersistenceConfig struct {
	AppName      string
	PresetPrefix string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogLookAt bool // Log every orientation change
}

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var LookAt LookAtConfig
var Interp InterpConfig
var Sim SimConfig
var Persistence PersistenceConfig
var Debug DebugConfig

func init() {
	C = &Config{
		TPS: 60,
	}

	// Viewer Config
	Viewer = ViewerConfig{
		EyeHeight:         1.6,  // Standing eye height in metres
		FollowSmoothing:   0.85, // Noticeable lag when the viewer changes waypoint
		FramesPerWaypoint: 120,
		ArriveDistance:    0.01,
	}

	// LookAt Config
	LookAt = LookAtConfig{
		AllowRotateAroundVertical:   true,
		AllowRotateAroundHorizontal: true,
		InvertedForwardAxis:         false,
		OnlyOnce:                    false,
	}

	// Interp Config
	Interp = InterpConfig{
		DefaultEasing:   "Linear",
		DefaultDuration: 1.0,
		SmoothDamp:      0.0,
		DefaultTint:     interp.White,
	}

	// Sim Config
	Sim = SimConfig{
		Frames:   600,
		LogEvery: 60,
		Realtime: false,
	}

	// Persistence Config
	Persistence = PersistenceConfig{
		AppName:      "xrmotion",
		PresetPrefix: "preset_",
	}
}
