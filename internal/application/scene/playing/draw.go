package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/collision"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorBackdrop = color.RGBA{40, 48, 72, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{140, 110, 80, 255}
	colorGoal     = color.RGBA{80, 220, 120, 255}
	colorCoin     = colornames.Gold
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorEnemyLeg = color.RGBA{120, 50, 50, 255}
	colorEye      = color.RGBA{20, 20, 20, 255}
	colorFlash    = color.RGBA{255, 255, 255, 200}
	colorText     = colornames.White
)

// HUD and overlay font
var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

const hudLineSpacing = 14

// Player body color per animation state
var playerColors = map[ecs.AnimState]color.RGBA{
	ecs.AnimIdle:   {100, 200, 100, 255},
	ecs.AnimRun:    {120, 220, 120, 255},
	ecs.AnimJump:   {150, 230, 150, 255},
	ecs.AnimCrouch: {80, 160, 80, 255},
}

// camera returns the top-left of the view: centered on the player
// horizontally and clamped to the map
func (p *Playing) camera() (int, int) {
	w := p.stage.World
	camX, camY := 0, 0
	if pos, ok := w.Position.Get(w.PlayerID); ok {
		body, _ := w.RectBody.Get(w.PlayerID)
		cx := pos.X
		if body != nil {
			cx += body.Width / 2
		}
		camX = int(cx) - p.screenW/2
	}

	mapW, mapH := p.stage.Tiles.PixelSize()
	maxCamX := mapW - p.screenW
	maxCamY := mapH - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	// Draw world
	p.drawTiles(screen, camX, camY)
	p.drawCoins(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawCentered(screen, "GAME OVER\n\nPress R to restart", color.RGBA{100, 0, 0, 180})
	case state.StateStageClear:
		p.drawCentered(screen, "GOAL!", color.RGBA{0, 60, 0, 120})
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	const ts = collision.TileSize

	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for _, dl := range p.stage.Layers {
		if dl.Kind == config.LayerCoins {
			continue
		}
		layer, ok := p.stage.Tiles.Layer(dl.ID)
		if !ok {
			continue
		}

		c, h := p.layerStyle(dl)
		for ty := max(startTileY, 0); ty <= endTileY && ty < layer.Height; ty++ {
			for tx := max(startTileX, 0); tx <= endTileX && tx < layer.Width; tx++ {
				if !layer.Occupied(tx, ty) {
					continue
				}
				x := float64(tx*ts - camX)
				y := float64(ty*ts - camY + ts - h)
				ebitenutil.DrawRect(screen, x, y, ts, float64(h), c)
			}
		}
	}
}

// layerStyle returns the color and drawn height of a layer's tiles. Thin
// solid layers draw only their surface band.
func (p *Playing) layerStyle(dl system.DrawLayer) (color.Color, int) {
	switch dl.Kind {
	case config.LayerSolid:
		for _, lc := range p.stageCfg.Layers {
			if lc.ID == dl.ID && lc.SurfaceHeight > 0 && lc.SurfaceHeight < collision.TileSize {
				return colorPlatform, lc.SurfaceHeight
			}
		}
		return colorWall, collision.TileSize
	case config.LayerGoal:
		return colorGoal, collision.TileSize
	default:
		return colorBackdrop, collision.TileSize
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, camX, camY int) {
	w := p.stage.World
	for _, id := range ecs.Join(w.Coin, w.Position, w.CircleBody) {
		coin, _ := w.Coin.Get(id)
		if coin.IsCollected {
			continue
		}
		pos, _ := w.Position.Get(id)
		body, _ := w.CircleBody.Get(id)

		c := body.Center(*pos)
		vector.DrawFilledCircle(screen,
			float32(c.X-float64(camX)), float32(c.Y-float64(camY)),
			float32(body.Radius/2), colorCoin, false)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY int) {
	w := p.stage.World
	for _, id := range ecs.Join(w.Enemy, w.Position, w.RectBody) {
		pos, _ := w.Position.Get(id)
		body, _ := w.RectBody.Get(id)

		x := pos.X - float64(camX)
		y := pos.Y - float64(camY)
		ebitenutil.DrawRect(screen, x, y, body.Width, body.Height, colorEnemy)

		// Legs follow the walk cycle
		if anim, ok := w.EnemyAnimation.Get(id); ok {
			step := float64(anim.SpriteX-32) / 8
			ebitenutil.DrawRect(screen, x+2+step, y+body.Height-3, 4, 3, colorEnemyLeg)
			ebitenutil.DrawRect(screen, x+body.Width-6-step, y+body.Height-3, 4, 3, colorEnemyLeg)
		}
		p.drawEye(screen, x, y, body)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	w := p.stage.World
	pos, ok := w.Position.Get(w.PlayerID)
	if !ok {
		return
	}
	body, _ := w.RectBody.Get(w.PlayerID)
	anim, _ := w.Animation.Get(w.PlayerID)
	player, _ := w.Player.Get(w.PlayerID)

	x := pos.X - float64(camX)
	y := pos.Y - float64(camY)
	h := body.Height

	var c color.Color = playerColors[anim.State]
	// Flash while invulnerable
	if player.Iframes > 0 && (player.Iframes/4)%2 == 0 {
		c = colorFlash
	}
	if anim.State == ecs.AnimCrouch {
		y += h / 2
		h /= 2
	}
	ebitenutil.DrawRect(screen, x, y, body.Width, h, c)
	p.drawEye(screen, x, y, body)
}

func (p *Playing) drawEye(screen *ebiten.Image, x, y float64, body *ecs.RectBody) {
	ex := x + body.Width - 6
	if body.FlipX {
		ex = x + 4
	}
	ebitenutil.DrawRect(screen, ex, y+4, 2, 2, colorEye)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	s := p.stage.World.MustStage()

	drawText(screen, fmt.Sprintf("TIME: %.1f", s.TimeRemaining), 2, 2, text.AlignStart)
	status := fmt.Sprintf("LIVES: %d  COINS: %d", s.Lives, s.Coins)
	drawText(screen, status, float64(p.screenW-2), 2, text.AlignEnd)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	p.drawCentered(screen, "PAUSED\n\nPress ESC to resume", color.RGBA{0, 0, 0, 128})
}

// drawCentered dims the screen and prints text in the middle
func (p *Playing) drawCentered(screen *ebiten.Image, msg string, overlay color.Color) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	_, h := text.Measure(msg, hudFace, hudLineSpacing)
	drawText(screen, msg, float64(p.screenW)/2, (float64(p.screenH)-h)/2, text.AlignCenter)
}

// drawText draws msg with its top edge at y, aligned horizontally on x
func drawText(screen *ebiten.Image, msg string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	op.LineSpacing = hudLineSpacing
	op.PrimaryAlign = align
	text.Draw(screen, msg, hudFace, op)
}
