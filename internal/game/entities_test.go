package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestPlayerUpdateIntegratesGravityThenFriction(t *testing.T) {
	p := NewPlayer(core.Point{X: 100, Y: 100}, config.Default())
	p.VX = 300

	p.Update(0.1)

	assert.InDelta(t, 100.0, p.VY, 1e-9)
	assert.InDelta(t, 130.0, p.X, 1e-9)
	assert.InDelta(t, 110.0, p.Y, 1e-9)
	assert.InDelta(t, 270.0, p.VX, 1e-9)
	assert.True(t, p.wasMovingDown)
	assert.Equal(t, 100.0, p.lastY)
}

func TestPlayerMoveSetsVelocity(t *testing.T) {
	p := NewPlayer(core.Point{}, config.Default())

	p.MoveLeft(0.016)
	assert.Equal(t, -300.0, p.VX)

	p.MoveRight(0.016)
	assert.Equal(t, 300.0, p.VX)
}

func TestPlayerJump(t *testing.T) {
	p := NewPlayer(core.Point{}, config.Default())

	assert.False(t, p.Jump(), "airborne player must not jump")
	assert.Equal(t, 0.0, p.VY)

	p.CanJump = true
	assert.True(t, p.Jump())
	assert.Equal(t, -500.0, p.VY)
	assert.False(t, p.CanJump)
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	pl := &Platform{Rect: core.NewRect(0, 100, 300, 20)}
	p := NewPlayer(core.Point{X: 100, Y: 39}, config.Default())
	p.VY = 100

	p.Update(0.02)
	require.Greater(t, p.Bottom(), pl.Y, "player should have sunk into the platform")

	assert.True(t, p.CheckPlatformCollision(pl))
	assert.Equal(t, pl.Y-p.H, p.Y)
	assert.Equal(t, 0.0, p.VY)
}

func TestPlayerStaysGroundedAcrossFrames(t *testing.T) {
	pl := &Platform{Rect: core.NewRect(0, 100, 300, 20)}
	p := NewPlayer(core.Point{X: 100, Y: 40}, config.Default())

	for i := 0; i < 10; i++ {
		p.Update(0.016)
		require.True(t, p.CheckPlatformCollision(pl), "frame %d", i)
		require.Equal(t, 40.0, p.Y)
	}
}

func TestPlayerRisingPassesThroughPlatform(t *testing.T) {
	pl := &Platform{Rect: core.NewRect(0, 100, 300, 20)}
	p := NewPlayer(core.Point{X: 100, Y: 60}, config.Default())
	p.VY = -400

	p.Update(0.016)

	assert.Less(t, p.VY, 0.0)
	assert.False(t, p.CheckPlatformCollision(pl))
}

func TestPlayerLandingRequiresPrecondition(t *testing.T) {
	tests := []struct {
		name  string
		start core.Point
		vy    float64
	}{
		// Bottom already below the platform top last frame
		{"was below top", core.Point{X: 100, Y: 50}, 100},
		// Entirely to the right of the platform
		{"no horizontal overlap", core.Point{X: 300, Y: 39}, 100},
		// Does not reach the platform top
		{"not reaching top", core.Point{X: 100, Y: 0}, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pl := &Platform{Rect: core.NewRect(0, 100, 300, 20)}
			p := NewPlayer(tc.start, config.Default())
			p.VY = tc.vy

			p.Update(0.02)
			assert.False(t, p.CheckPlatformCollision(pl))
		})
	}
}

func TestEnemyPatrolStaysWithinBounds(t *testing.T) {
	e := NewEnemy(core.NewRect(400, 270, 40, 40), 150, 300, 450)

	sawLeft, sawRight := false, false
	for i := 0; i < 500; i++ {
		// Irregular frame times, including a long stall
		dt := 0.016
		if i%7 == 0 {
			dt = 0.05
		}
		if i == 250 {
			dt = 3
		}
		e.Update(dt)

		require.GreaterOrEqual(t, e.X, e.LeftBound)
		require.LessOrEqual(t, e.X, e.RightBound-e.W)
		if e.Direction < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
	}
	assert.True(t, sawLeft && sawRight, "enemy should turn around at both bounds")
}

func TestEnemyFlipsAtBounds(t *testing.T) {
	e := NewEnemy(core.NewRect(405, 0, 40, 40), 100, 300, 450)
	require.Equal(t, 1.0, e.Direction)

	e.Update(0.1)
	assert.Equal(t, 410.0, e.X)
	assert.Equal(t, -1.0, e.Direction)

	e.X = 305
	e.Update(0.1)
	assert.Equal(t, 300.0, e.X)
	assert.Equal(t, 1.0, e.Direction)
}

func TestExitPulseBounces(t *testing.T) {
	x := NewExit(core.NewRect(0, 0, 50, 50), 2, 2)

	x.Update(0.4)
	assert.InDelta(t, 0.8, x.Pulse, 1e-9)

	x.Update(0.4)
	assert.Equal(t, 1.0, x.Pulse)

	x.Update(0.25)
	assert.InDelta(t, 0.5, x.Pulse, 1e-9)

	for i := 0; i < 100; i++ {
		x.Update(0.03)
		require.GreaterOrEqual(t, x.Pulse, 0.0)
		require.LessOrEqual(t, x.Pulse, 1.0)
	}
}

func TestExitPulseTurnsOnlyPastTheBounds(t *testing.T) {
	x := NewExit(core.NewRect(0, 0, 50, 50), 2, 2)

	x.Update(0.5)
	require.Equal(t, 1.0, x.Pulse)
	assert.Equal(t, 1.0, x.pulseDir, "landing exactly on 1 keeps rising")

	x.Update(0.1)
	assert.Equal(t, 1.0, x.Pulse)
	assert.Equal(t, -1.0, x.pulseDir)

	x.Update(0.5)
	require.Equal(t, 0.0, x.Pulse)
	assert.Equal(t, -1.0, x.pulseDir, "landing exactly on 0 keeps falling")

	x.Update(0.1)
	assert.Equal(t, 0.0, x.Pulse)
	assert.Equal(t, 1.0, x.pulseDir)
}

func TestFrameQueue(t *testing.T) {
	q := NewFrameQueue()
	assert.False(t, q.RunPending(epoch))

	calls := 0
	id := q.RequestFrame(func(ts time.Time) { calls++ })
	assert.NotZero(t, id)
	assert.True(t, q.Pending())

	q.CancelFrame(id + 1) // stale
	assert.True(t, q.Pending())

	q.CancelFrame(id)
	assert.False(t, q.Pending())
	assert.False(t, q.RunPending(epoch))
	assert.Equal(t, 0, calls)

	q.RequestFrame(func(ts time.Time) {
		calls++
		q.RequestFrame(func(time.Time) { calls += 10 })
	})
	assert.True(t, q.RunPending(epoch))
	assert.Equal(t, 1, calls)
	assert.True(t, q.RunPending(epoch))
	assert.Equal(t, 11, calls)
}
