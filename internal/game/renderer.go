package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"mythduel/internal/combat"
	"mythduel/internal/config"
	"mythduel/internal/mathutil"
	"mythduel/internal/perf"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// HUD colors.
var (
	ColorBackground  = color.RGBA{18, 16, 26, 255}
	ColorGround      = color.RGBA{40, 36, 52, 255}
	ColorGroundLine  = color.RGBA{90, 80, 120, 255}
	ColorPlayer      = color.RGBA{70, 130, 220, 255}
	ColorPlayerGhost = color.RGBA{70, 130, 220, 110}
	ColorEnemy       = color.RGBA{200, 70, 70, 255}
	ColorEnemyWindup = color.RGBA{240, 150, 60, 255}
	ColorEnemyStun   = color.RGBA{150, 80, 190, 255}
	ColorAttackBox   = color.RGBA{255, 60, 60, 90}
	ColorBarBack     = color.RGBA{0, 0, 0, 150}
	ColorHealthFill  = color.RGBA{70, 200, 90, 255}
	ColorStaminaFill = color.RGBA{230, 200, 70, 255}
	ColorMythFill    = color.RGBA{120, 90, 230, 255}
	ColorParryRing   = color.RGBA{120, 220, 255, 255}
	ColorStrikeWarn  = color.RGBA{200, 190, 80, 70}
	ColorStrikeBolt  = color.RGBA{250, 250, 160, 255}
)

// HUD dimensions.
const (
	HUDBarWidth    = 200
	HUDBarHeight   = 12
	HUDBarSpacing  = 18
	HUDMargin      = 14
	AbilityBoxSize = 26
)

// Renderer draws a combat snapshot with flat shapes: both fighters are
// rectangles, all feedback comes from color, flashes and text.
type Renderer struct {
	cfg *config.Config
	rng *rand.Rand

	bannerTween *gween.Tween
	bannerMode  combat.Mode
}

// NewRenderer creates a renderer for the given tuning.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(1)),
		bannerMode: combat.ModeRunning,
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, snap combat.Snapshot) {
	ox, oy := r.shakeOffset(snap.ShakeMagnitude)

	screen.Fill(ColorBackground)
	r.drawArena(screen, ox, oy)
	r.drawTrails(screen, snap, ox, oy)
	r.drawStrikes(screen, snap, ox, oy)
	r.drawEnemy(screen, snap, ox, oy)
	r.drawPlayer(screen, snap, ox, oy)
	r.drawHUD(screen, snap)
	r.drawFeedback(screen, snap)
	r.drawBanner(screen, snap)
}

func (r *Renderer) shakeOffset(magnitude float64) (float32, float32) {
	if magnitude <= 0 {
		return 0, 0
	}
	ox := (r.rng.Float64()*2 - 1) * magnitude
	oy := (r.rng.Float64()*2 - 1) * magnitude
	return float32(ox), float32(oy)
}

func (r *Renderer) drawArena(screen *ebiten.Image, ox, oy float32) {
	ground := float32(r.cfg.Arena.GroundY)
	width := float32(r.cfg.Arena.Width)
	height := float32(r.cfg.Arena.Height)
	vector.DrawFilledRect(screen, ox, ground+oy, width, height-ground, ColorGround, false)
	vector.DrawFilledRect(screen, ox, ground+oy, width, 2, ColorGroundLine, false)
}

func (r *Renderer) drawTrails(screen *ebiten.Image, snap combat.Snapshot, ox, oy float32) {
	for _, t := range snap.Trails {
		alpha := uint8(mathutil.Clamp(t.Life*90, 0, 255))
		clr := color.RGBA{180, 200, 255, alpha}
		if t.Heavy {
			clr = color.RGBA{255, 180, 120, alpha}
		}
		vector.DrawFilledRect(screen,
			float32(t.Box.X)+ox, float32(t.Box.Y)+oy,
			float32(t.Box.Width), float32(t.Box.Height), clr, false)
	}
}

func (r *Renderer) drawStrikes(screen *ebiten.Image, snap combat.Snapshot, ox, oy float32) {
	for _, s := range snap.Strikes {
		cx := float32(s.CenterX) + ox
		cy := float32(s.CenterY) + oy
		radius := float32(s.Radius)
		if s.Warming {
			// Telegraph circle on the ground before the bolt lands.
			vector.DrawFilledCircle(screen, cx, cy, radius, ColorStrikeWarn, true)
			vector.StrokeCircle(screen, cx, cy, radius, 2, ColorStrikeBolt, true)
		} else {
			alpha := uint8(mathutil.Clamp(s.Life*255, 0, 255))
			bolt := ColorStrikeBolt
			bolt.A = alpha
			vector.DrawFilledCircle(screen, cx, cy, radius, bolt, true)
			vector.DrawFilledRect(screen, cx-4, oy, 8, cy, bolt, false)
		}
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, snap combat.Snapshot, ox, oy float32) {
	e := snap.Enemy
	clr := ColorEnemy
	switch e.State {
	case "windup":
		clr = ColorEnemyWindup
	case "stunned":
		clr = ColorEnemyStun
	}
	vector.DrawFilledRect(screen,
		float32(e.Box.X)+ox, float32(e.Box.Y)+oy,
		float32(e.Box.Width), float32(e.Box.Height), clr, false)

	if e.HitFlash > 0 {
		alpha := uint8(mathutil.Clamp(e.HitFlash*200, 0, 255))
		vector.DrawFilledRect(screen,
			float32(e.Box.X)+ox, float32(e.Box.Y)+oy,
			float32(e.Box.Width), float32(e.Box.Height),
			color.RGBA{255, 255, 255, alpha}, false)
	}

	if e.AttackActive {
		vector.DrawFilledRect(screen,
			float32(e.AttackBox.X)+ox, float32(e.AttackBox.Y)+oy,
			float32(e.AttackBox.Width), float32(e.AttackBox.Height),
			ColorAttackBox, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, snap combat.Snapshot, ox, oy float32) {
	p := snap.Player
	clr := ColorPlayer
	if p.Invulnerable {
		clr = ColorPlayerGhost
	}
	vector.DrawFilledRect(screen,
		float32(p.Box.X)+ox, float32(p.Box.Y)+oy,
		float32(p.Box.Width), float32(p.Box.Height), clr, false)

	if p.ParryOpen {
		vector.StrokeCircle(screen,
			float32(p.Box.CenterX())+ox, float32(p.Box.CenterY())+oy,
			float32(p.Box.Height)*0.75, 2, ColorParryRing, true)
	}

	for _, overlay := range []struct {
		intensity float64
		clr       color.RGBA
	}{
		{p.HitFlash, color.RGBA{255, 60, 60, 0}},
		{p.ParryFlash, color.RGBA{120, 220, 255, 0}},
		{p.CastFlash, color.RGBA{190, 140, 255, 0}},
	} {
		if overlay.intensity <= 0 {
			continue
		}
		overlay.clr.A = uint8(mathutil.Clamp(overlay.intensity*180, 0, 255))
		vector.DrawFilledRect(screen,
			float32(p.Box.X)+ox, float32(p.Box.Y)+oy,
			float32(p.Box.Width), float32(p.Box.Height), overlay.clr, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap combat.Snapshot) {
	face := basicfont.Face7x13

	y := HUDMargin
	r.drawBar(screen, HUDMargin, y, snap.Player.HealthFraction, ColorHealthFill, "HP")
	y += HUDBarSpacing
	r.drawBar(screen, HUDMargin, y, snap.Player.StaminaFraction, ColorStaminaFill, "ST")
	y += HUDBarSpacing
	r.drawBar(screen, HUDMargin, y, snap.Player.MythFraction, ColorMythFill, "MY")

	enemyX := r.cfg.GetScreenWidth() - HUDMargin - HUDBarWidth
	r.drawBar(screen, enemyX, HUDMargin, snap.Enemy.HealthFraction, ColorEnemy, "FOE")
	ebitext.Draw(screen, snap.Enemy.State, face,
		enemyX, HUDMargin+HUDBarHeight+14, color.RGBA{180, 180, 190, 255})

	r.drawAbilities(screen, snap)

	if snap.Combo >= 2 {
		combo := fmt.Sprintf("%dx COMBO", snap.Combo)
		ebitext.Draw(screen, combo, face,
			r.cfg.GetScreenWidth()/2-len(combo)*7/2, HUDMargin+20,
			color.RGBA{255, 220, 120, 255})
	}
	if snap.Abilities.DilationActive {
		ebitext.Draw(screen, "TIME DILATION", face,
			r.cfg.GetScreenWidth()/2-45, HUDMargin+36,
			color.RGBA{150, 190, 255, 255})
	}
}

func (r *Renderer) drawBar(screen *ebiten.Image, x, y int, fraction float64, fill color.RGBA, label string) {
	fraction = mathutil.Clamp(fraction, 0, 1)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		HUDBarWidth, HUDBarHeight, ColorBarBack, false)
	vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1,
		float32((HUDBarWidth-2)*fraction), HUDBarHeight-2, fill, false)
	ebitext.Draw(screen, label, basicfont.Face7x13,
		x+HUDBarWidth+6, y+HUDBarHeight-2, color.RGBA{200, 200, 210, 255})
}

func (r *Renderer) drawAbilities(screen *ebiten.Image, snap combat.Snapshot) {
	type slot struct {
		key      string
		cooldown float64
	}
	slots := []slot{
		{"Q", snap.Abilities.DilationCooldown},
		{"E", snap.Abilities.LightningCooldown},
		{"AA", snap.Abilities.VoidShiftCooldown},
	}

	x := HUDMargin
	y := r.cfg.GetScreenHeight() - HUDMargin - AbilityBoxSize
	for _, s := range slots {
		vector.DrawFilledRect(screen, float32(x), float32(y),
			AbilityBoxSize, AbilityBoxSize, color.RGBA{60, 60, 70, 220}, false)
		if s.cooldown > 0 {
			covered := float32(AbilityBoxSize * mathutil.Clamp(s.cooldown, 0, 1))
			vector.DrawFilledRect(screen, float32(x), float32(y)+AbilityBoxSize-covered,
				AbilityBoxSize, covered, color.RGBA{0, 0, 0, 160}, false)
		}
		ebitext.Draw(screen, s.key, basicfont.Face7x13,
			x+6, y+AbilityBoxSize-8, color.RGBA{230, 230, 240, 255})
		x += AbilityBoxSize + 8
	}
}

func (r *Renderer) drawFeedback(screen *ebiten.Image, snap combat.Snapshot) {
	if snap.FeedbackText == "" {
		return
	}
	alpha := uint8(mathutil.Clamp(snap.FeedbackLife*255, 0, 255))
	ebitext.Draw(screen, snap.FeedbackText, basicfont.Face7x13,
		r.cfg.GetScreenWidth()/2-len(snap.FeedbackText)*7/2,
		int(r.cfg.Arena.GroundY)-160,
		color.RGBA{255, 255, 255, alpha})
}

func (r *Renderer) drawBanner(screen *ebiten.Image, snap combat.Snapshot) {
	if snap.Mode != r.bannerMode {
		r.bannerMode = snap.Mode
		if snap.Mode != combat.ModeRunning {
			r.bannerTween = gween.New(0, 1, 0.6, ease.OutExpo)
		} else {
			r.bannerTween = nil
		}
	}
	if snap.Mode == combat.ModeRunning || r.bannerTween == nil {
		return
	}

	progress, _ := r.bannerTween.Update(float32(simStep))

	width := r.cfg.GetScreenWidth()
	height := r.cfg.GetScreenHeight()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height),
		color.RGBA{0, 0, 0, uint8(120 * progress)}, false)

	text := "VICTORY"
	clr := color.RGBA{120, 255, 150, uint8(255 * progress)}
	if snap.Mode == combat.ModeDefeat {
		text = "DEFEAT"
		clr = color.RGBA{255, 110, 110, uint8(255 * progress)}
	}
	ebitext.Draw(screen, text, basicfont.Face7x13,
		width/2-len(text)*7/2, height/2-10, clr)
	ebitext.Draw(screen, "press R to restart", basicfont.Face7x13,
		width/2-63, height/2+10, color.RGBA{210, 210, 220, uint8(255 * progress)})
}

// DrawPerf draws the frame-timing overlay.
func (r *Renderer) DrawPerf(screen *ebiten.Image, stats perf.Stats) {
	line := fmt.Sprintf("frame %.2fms avg %.2fms ticks %d",
		stats.LastFrameMs, stats.AvgFrameMs, stats.FrameCount)
	ebitext.Draw(screen, line, basicfont.Face7x13,
		HUDMargin, r.cfg.GetScreenHeight()-HUDMargin-AbilityBoxSize-12,
		color.RGBA{160, 255, 160, 255})
}
