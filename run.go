package holdmenu

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// OnUpdate, if set, runs every tick before the scene updates. A non-nil
	// error stops the game loop.
	OnUpdate func() error
}

// Run opens a window and drives scene until the window closes or OnUpdate
// returns an error. The viewport follows the window size.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if size != g.scene.Viewport() {
		g.scene.SetViewport(size)
	}
	return outsideWidth, outsideHeight
}
