// Package game implements the platformer simulation: entities, physics,
// collision, the per-frame loop and level progression.
package game

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Platform is an immutable solid surface.
type Platform struct {
	core.Rect
}

// Bounds returns the platform rectangle.
func (p *Platform) Bounds() core.Rect { return p.Rect }

// Coin is a collectible with a spin animation phase.
type Coin struct {
	core.Rect
	Rotation float64
}

// Bounds returns the coin rectangle.
func (c *Coin) Bounds() core.Rect { return c.Rect }

// Enemy patrols back and forth between two bounds.
type Enemy struct {
	core.Rect
	Direction  float64 // +1 right, -1 left
	Speed      float64 // px/s
	LeftBound  float64
	RightBound float64
}

// NewEnemy creates an enemy moving right.
func NewEnemy(r core.Rect, speed, left, right float64) *Enemy {
	return &Enemy{
		Rect:       r,
		Direction:  1,
		Speed:      speed,
		LeftBound:  left,
		RightBound: right,
	}
}

// Bounds returns the enemy rectangle.
func (e *Enemy) Bounds() core.Rect { return e.Rect }

// Update advances the patrol. The enemy turns around when it reaches a
// bound and is clamped to stay within [LeftBound, RightBound-W].
func (e *Enemy) Update(dt float64) {
	e.X += e.Direction * e.Speed * dt

	if e.X <= e.LeftBound {
		e.X = e.LeftBound
		e.Direction = 1
	} else if e.X+e.W >= e.RightBound {
		e.X = e.RightBound - e.W
		e.Direction = -1
	}
}

// Exit is the level's goal portal.
type Exit struct {
	core.Rect
	Pulse     float64 // in [0, 1]
	pulseDir  float64
	pulseRate float64
	Swirl     float64 // radians
	swirlRate float64
}

// NewExit creates a portal with the given pulse and swirl rates per second.
func NewExit(r core.Rect, pulseRate, swirlRate float64) *Exit {
	return &Exit{
		Rect:      r,
		pulseDir:  1,
		pulseRate: pulseRate,
		swirlRate: swirlRate,
	}
}

// Bounds returns the portal rectangle.
func (x *Exit) Bounds() core.Rect { return x.Rect }

// Update advances the pulse, bouncing between 0 and 1.
func (x *Exit) Update(dt float64) {
	x.Pulse += dt * x.pulseRate * x.pulseDir
	if x.Pulse > 1 {
		x.Pulse = 1
		x.pulseDir = -1
	} else if x.Pulse < 0 {
		x.Pulse = 0
		x.pulseDir = 1
	}
}

// Animate advances the swirl by dt seconds.
func (x *Exit) Animate(dt float64) {
	x.Swirl = math.Mod(x.Swirl+dt*x.swirlRate, 2*math.Pi)
}
