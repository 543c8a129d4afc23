package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Each section points at the live global so
// keys missing from the file keep their current value.
type fileConfig struct {
	Screen   *Config         `yaml:"screen"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Player   *PlayerConfig   `yaml:"player"`
	Enemy    *EnemyConfig    `yaml:"enemy"`
	Platform *PlatformConfig `yaml:"platform"`
	Camera   *CameraConfig   `yaml:"camera"`
}

// Load overlays the YAML file at path onto the current configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Parse overlays YAML data onto the current configuration. On error the
// globals are left untouched.
func Parse(data []byte) error {
	screen := *C
	physics := Physics
	player := Player
	enemy := Enemy
	platform := Platform
	camera := Camera

	fc := fileConfig{
		Screen:   &screen,
		Physics:  &physics,
		Player:   &player,
		Enemy:    &enemy,
		Platform: &platform,
		Camera:   &camera,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := validate(&screen); err != nil {
		return err
	}

	C = &screen
	Physics = physics
	Player = player
	Enemy = enemy
	Platform = platform
	Camera = camera
	return nil
}

func validate(c *Config) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
