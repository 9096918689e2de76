package core

// Color is a named palette entry. Shells translate it to whatever their
// backend understands (ANSI 256 codes in the terminal, RGBA in the window).
type Color uint8

// Palette entries used by the renderer.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorPlatform
	ColorPlatformTop
	ColorPlayer
	ColorPlayerFace
	ColorEnemy
	ColorEnemyEye
	ColorEnemyPupil
	ColorCoin
	ColorPortal
	ColorPortalGlow
	ColorPortalSwirl
	ColorHUDBox
	ColorHUDText
)

// RGBA is a backend-neutral colour value.
type RGBA struct {
	R, G, B, A uint8
}

var palette = map[Color]RGBA{
	ColorDefault:     {0xFF, 0xFF, 0xFF, 0xFF},
	ColorBackground:  {0x33, 0x33, 0x33, 0xFF},
	ColorPlatform:    {0x79, 0x55, 0x48, 0xFF},
	ColorPlatformTop: {0x8D, 0x6E, 0x63, 0xFF},
	ColorPlayer:      {0x4C, 0xAF, 0x50, 0xFF},
	ColorPlayerFace:  {0x33, 0x33, 0x33, 0xFF},
	ColorEnemy:       {0xF4, 0x43, 0x36, 0xFF},
	ColorEnemyEye:    {0xFF, 0xFF, 0xFF, 0xFF},
	ColorEnemyPupil:  {0x00, 0x00, 0x00, 0xFF},
	ColorCoin:        {0xFF, 0xD7, 0x00, 0xFF},
	ColorPortal:      {0x8C, 0x00, 0xFF, 0xFF},
	ColorPortalGlow:  {0x4B, 0x00, 0x82, 0xFF},
	ColorPortalSwirl: {0xFF, 0xFF, 0xFF, 0xFF},
	ColorHUDBox:      {0x00, 0x00, 0x00, 0x80},
	ColorHUDText:     {0xFF, 0xFF, 0xFF, 0xFF},
}

// RGBA returns the colour value for a palette entry.
// Unknown entries resolve to ColorDefault.
func (c Color) RGBA() RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}
