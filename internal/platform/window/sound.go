package window

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-platformer/internal/audio"
)

// SampleRate of the synthesized sounds.
const SampleRate = 44100

// tone describes a sine sweep.
type tone struct {
	from, to float64 // Hz
	dur      time.Duration
	volume   float64
}

var effects = map[audio.Sound]tone{
	audio.Jump:          {from: 300, to: 650, dur: 150 * time.Millisecond, volume: 0.4},
	audio.Coin:          {from: 900, to: 1400, dur: 100 * time.Millisecond, volume: 0.35},
	audio.Hurt:          {from: 320, to: 90, dur: 250 * time.Millisecond, volume: 0.5},
	audio.GameOver:      {from: 420, to: 80, dur: 900 * time.Millisecond, volume: 0.5},
	audio.LevelComplete: {from: 520, to: 1040, dur: 600 * time.Millisecond, volume: 0.45},
}

// musicNotes is the looping background melody, one note per beat.
var musicNotes = []float64{262, 330, 392, 330, 294, 349, 440, 349}

const musicBeat = 250 * time.Millisecond

// synth renders t as 16-bit little-endian stereo PCM with a linear decay.
func synth(t tone, sampleRate int) []byte {
	n := int(t.dur.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*p
		v := int16(math.Sin(phase) * t.volume * (1 - p) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
		phase += 2 * math.Pi * freq / float64(sampleRate)
	}
	return buf
}

// melody renders the background loop.
func melody(sampleRate int) []byte {
	var out []byte
	for _, f := range musicNotes {
		out = append(out, synth(tone{from: f, to: f, dur: musicBeat, volume: 0.15}, sampleRate)...)
	}
	return out
}

// ToneBackend is an audio.Backend that plays synthesized tones through the
// Ebitengine audio context.
type ToneBackend struct {
	ctx    *eaudio.Context
	sfx    map[audio.Sound][]byte
	music  *eaudio.Player
	active []*eaudio.Player
}

// NewToneBackend renders every sound up front and prepares the music loop.
func NewToneBackend() (*ToneBackend, error) {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(SampleRate)
	}
	rate := ctx.SampleRate()

	b := &ToneBackend{ctx: ctx, sfx: make(map[audio.Sound][]byte, len(effects))}
	for s, t := range effects {
		b.sfx[s] = synth(t, rate)
	}

	pcm := melody(rate)
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("window: cannot create music player: %w", err)
	}
	music.SetVolume(0.5)
	b.music = music
	return b, nil
}

// Play implements audio.Backend.
func (b *ToneBackend) Play(s audio.Sound) error {
	pcm, ok := b.sfx[s]
	if !ok {
		return fmt.Errorf("window: no tone for sound %s", s)
	}
	b.prune()
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	b.active = append(b.active, p)
	return nil
}

// prune drops players that finished.
func (b *ToneBackend) prune() {
	kept := b.active[:0]
	for _, p := range b.active {
		if p.IsPlaying() {
			kept = append(kept, p)
		}
	}
	b.active = kept
}

// StartMusic implements audio.Backend.
func (b *ToneBackend) StartMusic() error {
	b.music.Play()
	return nil
}

// StopMusic implements audio.Backend.
func (b *ToneBackend) StopMusic() error {
	b.music.Pause()
	return b.music.SetPosition(0)
}
