package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed   float64 `yaml:"move_speed"`   // units per second
	JumpImpulse float64 `yaml:"jump_impulse"` // applied upward (negative y)

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = uncapped

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// DeathMargin is added below the level's bottom edge to form the fall-death height.
	DeathMargin float64 `yaml:"death_margin"`
}

// PhysicsConfig contains physics-related configuration values shared by all bodies
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = uncapped
}

// EnemyConfig contains defaults for patrolling hazards
type EnemyConfig struct {
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	PatrolDistance float64 `yaml:"patrol_distance"` // used when a level gives no bounds
}

// PlatformConfig contains defaults for scripted platforms
type PlatformConfig struct {
	ShuttleSpeed    float64 `yaml:"shuttle_speed"`
	BounceAmplitude float64 `yaml:"bounce_amplitude"`
	BounceFrequency float64 `yaml:"bounce_frequency"` // radians per second
	PathDistance    float64 `yaml:"path_distance"`
	PathDuration    float64 `yaml:"path_duration"` // seconds per leg
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Zoom         float64 `yaml:"zoom"`
	ClampToLevel bool    `yaml:"clamp_to_level"`
}

// ColorConfig holds the flat colors used by the rectangle renderer
type ColorConfig struct {
	Background color.RGBA
	Player     color.RGBA
	Solid      color.RGBA
	Platform   color.RGBA
	Hazard     color.RGBA
	Enemy      color.RGBA
	HUDText    color.RGBA
	Overlay    color.RGBA // drawn over the world while paused
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBounds bool // Outline every body and broad-phase cell object
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Platform PlatformConfig
var Camera CameraConfig
var Colors ColorConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      980.0,
		MaxFallSpeed: 0, // uncapped, matches observed behaviour
	}

	Player = PlayerConfig{
		MoveSpeed:    200.0,
		JumpImpulse:  500.0,
		Gravity:      980.0,
		MaxFallSpeed: 0,
		Width:        20,
		Height:       40,
		DeathMargin:  200,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:    60.0,
		PatrolDistance: 96.0,
	}

	Platform = PlatformConfig{
		ShuttleSpeed:    80.0,
		BounceAmplitude: 40.0,
		BounceFrequency: 2.0,
		PathDistance:    128.0,
		PathDuration:    2.0,
	}

	Camera = CameraConfig{
		Zoom:         1.0,
		ClampToLevel: true,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 50, G: 50, B: 50, A: 255},
		Player:     color.RGBA{R: 100, G: 100, B: 250, A: 255},
		Solid:      color.RGBA{R: 100, G: 200, B: 100, A: 255},
		Platform:   color.RGBA{R: 200, G: 170, B: 90, A: 255},
		Hazard:     color.RGBA{R: 230, G: 60, B: 60, A: 255},
		Enemy:      color.RGBA{R: 255, G: 140, B: 0, A: 255},
		HUDText:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Overlay:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Debug = DebugConfig{
		DrawBounds: false,
	}
}
