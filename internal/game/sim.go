package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Phase is the lifecycle state of a level or session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseRunning
	PhaseLevelComplete
	PhaseDepleted
	PhaseTerminal
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseDepleted:
		return "depleted"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// SoundPlayer receives fire-and-forget sound events.
type SoundPlayer interface {
	Play(s audio.Sound)
}

type nopSounds struct{}

func (nopSounds) Play(audio.Sound) {}

// Hooks are the collaborator callbacks of a simulation. Nil hooks are skipped.
type Hooks struct {
	OnScore         func(score int)
	OnLives         func(lives int)
	OnLevelComplete func()
}

// Simulation owns every entity of the current level.
type Simulation struct {
	cfg        config.Config
	level      level.Level
	difficulty config.Difficulty
	width      float64 // canvas width in px
	height     float64 // canvas height in px

	Player    *Player
	Platforms []*Platform
	Coins     []*Coin
	Enemies   []*Enemy
	Exit      *Exit

	score int
	lives int
	phase Phase

	sounds SoundPlayer
	hooks  Hooks
}

// NewSimulation builds the entities of lvl for a canvas of width x height
// pixels. The starting lives are reported through hooks.OnLives.
func NewSimulation(lvl level.Level, cfg config.Config, diff config.Difficulty, width, height float64, sounds SoundPlayer, hooks Hooks) *Simulation {
	if sounds == nil {
		sounds = nopSounds{}
	}
	s := &Simulation{
		cfg:        cfg,
		level:      lvl,
		difficulty: diff,
		width:      width,
		height:     height,
		sounds:     sounds,
		hooks:      hooks,
	}
	s.load()
	return s
}

// load creates every entity from the level data.
func (s *Simulation) load() {
	s.phase = PhaseLoading

	s.Platforms = make([]*Platform, 0, len(s.level.Platforms))
	for _, r := range s.level.Platforms {
		s.Platforms = append(s.Platforms, &Platform{Rect: r})
	}

	size := s.cfg.Coin.Size
	s.Coins = make([]*Coin, 0, len(s.level.Coins))
	for _, p := range s.level.Coins {
		s.Coins = append(s.Coins, &Coin{Rect: core.NewRect(p.X, p.Y, size, size)})
	}

	speed := s.cfg.EnemySpeed(s.difficulty)
	s.Enemies = make([]*Enemy, 0, len(s.level.Enemies))
	for _, e := range s.level.Enemies {
		r := core.NewRect(e.Pos.X, e.Pos.Y, s.cfg.Enemy.Width, s.cfg.Enemy.Height)
		s.Enemies = append(s.Enemies, NewEnemy(r, speed, e.LeftBound, e.RightBound))
	}

	s.Exit = nil
	if s.level.Exit != nil {
		s.Exit = NewExit(*s.level.Exit, s.cfg.Exit.PulseRate, s.cfg.Exit.SwirlRate)
	}

	s.Player = NewPlayer(s.level.PlayerStart, s.cfg)
	s.score = 0
	s.lives = s.cfg.StartingLives(s.difficulty)
	s.reportLives()
	s.phase = PhaseRunning
}

// Score returns the score collected in this level.
func (s *Simulation) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Level returns the level being played.
func (s *Simulation) Level() level.Level { return s.level }

// Difficulty returns the difficulty preset.
func (s *Simulation) Difficulty() config.Difficulty { return s.difficulty }

// TryJump jumps if the player is grounded, playing the jump sound.
func (s *Simulation) TryJump() bool {
	if !s.Player.Jump() {
		return false
	}
	s.sounds.Play(audio.Jump)
	return true
}

// Update advances the simulation by dt seconds using the given input.
// Only a running simulation changes; a depleted or completed level is frozen.
func (s *Simulation) Update(dt float64, in core.InputFrame) {
	if s.phase != PhaseRunning {
		return
	}
	p := s.Player

	// Input
	if in.Left {
		p.MoveLeft(dt)
	}
	if in.Right {
		p.MoveRight(dt)
	}
	if in.Jump && p.CanJump {
		s.TryJump()
	}

	p.Update(dt)

	// Platforms
	p.CanJump = false
	for _, pl := range s.Platforms {
		if p.CheckPlatformCollision(pl) {
			p.CanJump = true
		}
	}

	// Horizontal bounds; the top is open
	if p.X < 0 {
		p.X = 0
	}
	if p.Right() > s.width {
		p.X = s.width - p.W
	}

	// Fall-out
	if p.Y > s.height || p.Y > s.cfg.World.SafetyBoundary {
		s.loseLife()
		p.Respawn(s.level.PlayerStart)
	}

	// Enemies; one hit per frame
	for _, e := range s.Enemies {
		e.Update(dt)
		if p.Intersects(e.Rect) {
			s.loseLife()
			p.Respawn(s.level.PlayerStart)
			break
		}
	}

	// Coins
	for i := len(s.Coins) - 1; i >= 0; i-- {
		if p.Intersects(s.Coins[i].Rect) {
			s.score += s.cfg.Coin.Value
			s.reportScore()
			s.sounds.Play(audio.Coin)
			s.Coins = append(s.Coins[:i], s.Coins[i+1:]...)
		}
	}

	// Exit
	if s.Exit != nil {
		s.Exit.Update(dt)
		if p.Intersects(s.Exit.Rect) && s.phase == PhaseRunning {
			s.phase = PhaseLevelComplete
			s.sounds.Play(audio.LevelComplete)
			if s.hooks.OnLevelComplete != nil {
				s.hooks.OnLevelComplete()
			}
		}
	}
}

// loseLife takes one life. Reaching zero plays the game-over sound once and
// freezes the level.
func (s *Simulation) loseLife() {
	if s.phase == PhaseDepleted {
		return
	}
	s.lives--
	s.reportLives()
	s.sounds.Play(audio.Hurt)

	if s.lives <= 0 {
		s.phase = PhaseDepleted
		s.sounds.Play(audio.GameOver)
	}
}

// Animate advances presentation-only state: coin spin and portal swirl.
func (s *Simulation) Animate(dt float64) {
	for _, c := range s.Coins {
		c.Rotation += s.cfg.Coin.Spin
	}
	if s.Exit != nil {
		s.Exit.Animate(dt)
	}
}

func (s *Simulation) reportScore() {
	if s.hooks.OnScore != nil {
		s.hooks.OnScore(s.score)
	}
}

func (s *Simulation) reportLives() {
	if s.hooks.OnLives != nil {
		s.hooks.OnLives(s.lives)
	}
}

// Render draws the current state. It does not mutate the simulation.
func (s *Simulation) Render(c core.Canvas) {
	c.FillRect(core.NewRect(0, 0, s.width, s.height), core.ColorBackground)

	if s.Exit != nil {
		drawExit(c, s.Exit)
	}
	for _, pl := range s.Platforms {
		drawPlatform(c, pl)
	}
	for _, coin := range s.Coins {
		drawCoin(c, coin)
	}
	for _, e := range s.Enemies {
		drawEnemy(c, e)
	}
	drawPlayer(c, s.Player)

	// Level badge, top right
	c.FillRect(core.NewRect(s.width-150, 10, 140, 30), core.ColorHUDBox)
	label := fmt.Sprintf("Level %d", s.level.ID)
	c.DrawText(s.width-20-textWidth(label), 18, label, core.ColorHUDText)
}

// textWidth approximates a 16px sans-serif run.
func textWidth(s string) float64 {
	return float64(len(s)) * 8
}

func drawPlatform(c core.Canvas, p *Platform) {
	c.FillRect(p.Rect, core.ColorPlatform)
	c.FillRect(core.NewRect(p.X, p.Y, p.W, math.Min(10, p.H)), core.ColorPlatformTop)
}

func drawCoin(c core.Canvas, coin *Coin) {
	center := coin.Center()
	rx := coin.W / 2 * math.Abs(math.Cos(coin.Rotation))
	c.FillEllipse(center.X, center.Y, rx, coin.H/2, core.ColorCoin)
}

func drawEnemy(c core.Canvas, e *Enemy) {
	c.FillRect(e.Rect, core.ColorEnemy)

	// Eyes
	c.FillRect(core.NewRect(e.X+e.W*0.2, e.Y+e.H*0.2, e.W*0.15, e.H*0.15), core.ColorEnemyEye)
	c.FillRect(core.NewRect(e.X+e.W*0.65, e.Y+e.H*0.2, e.W*0.15, e.H*0.15), core.ColorEnemyEye)

	// Pupils look where the enemy walks
	off := 0.05
	if e.Direction < 0 {
		off = -0.05
	}
	c.FillRect(core.NewRect(e.X+e.W*(0.2+off), e.Y+e.H*0.2, e.W*0.1, e.H*0.1), core.ColorEnemyPupil)
	c.FillRect(core.NewRect(e.X+e.W*(0.65+off), e.Y+e.H*0.2, e.W*0.1, e.H*0.1), core.ColorEnemyPupil)

	// Mouth
	c.FillRect(core.NewRect(e.X+e.W*0.3, e.Y+e.H*0.7, e.W*0.4, e.H*0.1), core.ColorEnemyPupil)
}

func drawPlayer(c core.Canvas, p *Player) {
	c.FillRect(p.Rect, core.ColorPlayer)

	// Eyes
	c.FillRect(core.NewRect(p.X+p.W*0.7, p.Y+p.H*0.3, p.W*0.15, p.H*0.1), core.ColorPlayerFace)
	c.FillRect(core.NewRect(p.X+p.W*0.3, p.Y+p.H*0.3, p.W*0.15, p.H*0.1), core.ColorPlayerFace)

	// Mouth
	c.FillRect(core.NewRect(p.X+p.W*0.3, p.Y+p.H*0.6, p.W*0.4, p.H*0.05), core.ColorPlayerFace)
}

func drawExit(c core.Canvas, x *Exit) {
	center := x.Center()
	grow := 5 * x.Pulse
	c.FillEllipse(center.X, center.Y, x.W/2+grow, x.H/2+grow, core.ColorPortalGlow)
	c.FillEllipse(center.X, center.Y, (x.W/2+grow)*0.7, (x.H/2+grow)*0.7, core.ColorPortal)

	// Three swirl arms
	r := x.W / 4
	for i := 0; i < 3; i++ {
		a := x.Swirl + float64(i)*2*math.Pi/3
		px := center.X + r*math.Cos(a)
		py := center.Y + r*math.Sin(a)
		c.FillRect(core.NewRect(px-2, py-2, 4, 4), core.ColorPortalSwirl)
	}
}
