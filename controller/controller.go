// Package controller implements the player state machine: walking, jumping,
// riding moving platforms, and dying.
package controller

import (
	"log/slog"

	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Input is the per-frame action snapshot the controller reads.
type Input interface {
	Held(a cfg.ActionID) bool
	Pressed(a cfg.ActionID) bool
}

// Cause records why the player died.
type Cause string

const (
	CauseFell   Cause = "fell"
	CauseHazard Cause = "hazard"
)

// Update integrates one frame of player movement. Collision runs afterwards and
// reports contact through BeginContact, Land, SetOnPlatform and EndContact.
func Update(w donburi.World, b *components.BodyData, c *components.ControllerData, in Input, dt float64, log *slog.Logger) {
	dt = motion.Delta(dt)

	b.Velocity.X = 0
	if in != nil {
		if in.Held(cfg.ActionMoveLeft) {
			b.Velocity.X -= c.MoveSpeed
		}
		if in.Held(cfg.ActionMoveRight) {
			b.Velocity.X += c.MoveSpeed
		}
		if in.Pressed(cfg.ActionJump) && (c.Grounded || c.OnPlatform) {
			b.Velocity.Y = -c.JumpImpulse
			c.Grounded = false
			Detach(c)
		}
	}

	b.Velocity.Y += c.Gravity * dt
	if c.MaxFallSpeed > 0 && b.Velocity.Y > c.MaxFallSpeed {
		b.Velocity.Y = c.MaxFallSpeed
	}

	// Riding and walking are exclusive so platform motion is never counted twice.
	if platformX, ok := attachedX(w, c); ok {
		b.Position.X += platformX - c.CarryRefX
		c.CarryRefX = platformX
	} else {
		b.Position.X += b.Velocity.X * dt
	}
	b.Position.Y += b.Velocity.Y * dt

	if b.Position.Y > c.DeathHeight {
		Kill(b, c, CauseFell, log)
	}
}

// attachedX returns the current x of the attached platform. A stale handle
// detaches the controller.
func attachedX(w donburi.World, c *components.ControllerData) (float64, bool) {
	if !c.OnPlatform || c.AttachedPlatform == donburi.Null {
		return 0, false
	}
	if w == nil || !w.Valid(c.AttachedPlatform) {
		Detach(c)
		return 0, false
	}
	e := w.Entry(c.AttachedPlatform)
	if !e.HasComponent(components.Body) {
		Detach(c)
		return 0, false
	}
	return components.Body.Get(e).Position.X, true
}

// BeginContact resets ground state before a collision pass.
func BeginContact(c *components.ControllerData) {
	c.Grounded = false
	c.OnPlatform = false
}

// Land records contact with the top of a static solid.
func Land(c *components.ControllerData) {
	c.Grounded = true
}

// SetOnPlatform records contact with the top of a moving platform. The carry
// baseline is captured on attach and kept while the same platform is reported.
func SetOnPlatform(c *components.ControllerData, platform donburi.Entity, platformX float64) {
	c.OnPlatform = true
	if c.AttachedPlatform != platform {
		c.AttachedPlatform = platform
		c.CarryRefX = platformX
	}
}

// EndContact drops the attachment when the pass reported no platform.
func EndContact(c *components.ControllerData) {
	if !c.OnPlatform {
		c.AttachedPlatform = donburi.Null
	}
}

// Detach clears platform state.
func Detach(c *components.ControllerData) {
	c.OnPlatform = false
	c.AttachedPlatform = donburi.Null
	c.CarryRefX = 0
}

// Kill marks the player dead and respawns it immediately.
func Kill(b *components.BodyData, c *components.ControllerData, cause Cause, log *slog.Logger) {
	c.Dead = true
	c.Deaths++
	if log == nil {
		log = slog.Default()
	}
	log.Info("player died",
		"cause", cause,
		"x", b.Position.X,
		"y", b.Position.Y,
		"deaths", c.Deaths,
	)
	Respawn(b, c)
}

// Respawn returns the player to its spawn point at rest.
func Respawn(b *components.BodyData, c *components.ControllerData) {
	b.Position = c.Spawn
	b.Previous = c.Spawn
	b.Velocity = math.Vec2{}
	c.Grounded = false
	Detach(c)
	c.Dead = false
}
