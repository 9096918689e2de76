package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the controlled character.
type Player struct {
	core.Rect
	VX, VY  float64 // px/s
	CanJump bool

	lastY         float64
	wasMovingDown bool
	physics       config.Physics
}

// NewPlayer creates a player at pos.
func NewPlayer(pos core.Point, cfg config.Config) *Player {
	return &Player{
		Rect:    core.NewRect(pos.X, pos.Y, cfg.Player.Width, cfg.Player.Height),
		lastY:   pos.Y,
		physics: cfg.Physics,
	}
}

// Bounds returns the player hitbox.
func (p *Player) Bounds() core.Rect { return p.Rect }

// Update integrates one frame of motion.
// Friction is applied once per frame, so it depends on the frame rate.
func (p *Player) Update(dt float64) {
	p.lastY = p.Y
	p.VY += p.physics.Gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.wasMovingDown = p.VY > 0
	p.VX *= p.physics.Friction
}

// MoveLeft sets the horizontal velocity to full speed leftward.
func (p *Player) MoveLeft(dt float64) {
	p.VX = -p.physics.MoveSpeed
}

// MoveRight sets the horizontal velocity to full speed rightward.
func (p *Player) MoveRight(dt float64) {
	p.VX = p.physics.MoveSpeed
}

// Jump launches the player if grounded. Returns true if the jump happened.
func (p *Player) Jump() bool {
	if !p.CanJump {
		return false
	}
	p.VY = p.physics.JumpImpulse
	p.CanJump = false
	return true
}

// CheckPlatformCollision lands the player on top of the platform if it
// was above it last frame and is falling into it now. Platforms are
// one-way: rising players pass through from below.
func (p *Player) CheckPlatformCollision(pl *Platform) bool {
	if p.VY < 0 {
		return false
	}

	wasAbove := p.lastY+p.H <= pl.Y
	overlapsX := p.X+p.W > pl.X && p.X < pl.Right()
	reachesTop := p.Bottom() >= pl.Y

	if wasAbove && p.wasMovingDown && overlapsX && reachesTop {
		p.Y = pl.Y - p.H
		p.VY = 0
		return true
	}
	return false
}

// Respawn moves the player to pos and stops it.
func (p *Player) Respawn(pos core.Point) {
	p.X, p.Y = pos.X, pos.Y
	p.VX, p.VY = 0, 0
	p.lastY = pos.Y
	p.wasMovingDown = false
}
