package holdmenu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene owns the node tree, the frame runner, input state and the shared
// menu configuration.
//
// The tree has two fixed layers under the root: Content, the normal screen
// (shrunk around its center while a menu is open), and Overlay, the portal
// layer that hosts lifted elements and menus above everything else.
type Scene struct {
	root    *Node
	content *Node
	overlay *Node

	runner   *Runner
	viewport Size
	cfg      Config
	logger   *zap.Logger
	debug    bool

	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color
	// Icons resolves MenuItem.Icon names for every menu in the scene.
	Icons IconSet

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	injectHeld   bool
}

// NewScene creates a scene for a viewport of the given size using
// DefaultConfig.
func NewScene(viewport Size) *Scene {
	root := NewContainer("root")
	root.isRoot = true
	s := &Scene{
		root:    root,
		content: NewContainer("content"),
		overlay: NewContainer("overlay"),
		runner:  NewRunner(),
		cfg:     DefaultConfig(),
		logger:  zap.NewNop(),
	}
	root.AddChild(s.content)
	root.AddChild(s.overlay)
	s.SetViewport(viewport)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node { return s.root }

// Content returns the layer for normal screen content.
func (s *Scene) Content() *Node { return s.content }

// Overlay returns the portal layer drawn above Content.
func (s *Scene) Overlay() *Node { return s.overlay }

// Runner returns the frame runner that drives tweens and timers.
func (s *Scene) Runner() *Runner { return s.runner }

// Viewport returns the current viewport size.
func (s *Scene) Viewport() Size { return s.viewport }

// SetViewport resizes the viewport. The content layer's pivot follows the
// viewport center so background shrinking stays centered.
func (s *Scene) SetViewport(size Size) {
	s.viewport = size
	s.content.SetPivot(size.Width/2, size.Height/2)
	s.content.SetPosition(size.Width/2, size.Height/2)
	s.content.Width = size.Width
	s.content.Height = size.Height
}

// Config returns the configuration new menu sessions are created with.
func (s *Scene) Config() Config { return s.cfg }

// SetConfig replaces the configuration. Sessions already running keep the
// copy they started with.
func (s *Scene) SetConfig(cfg Config) { s.cfg = cfg }

// Logger returns the scene logger. Never nil.
func (s *Scene) Logger() *zap.Logger { return s.logger }

// SetLogger sets the logger used by the scene and by sessions created
// afterwards. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled and no logger
// has been set, a development logger writing to stderr is installed.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled && !s.logger.Core().Enabled(zap.DebugLevel) {
		if l, err := zap.NewDevelopment(); err == nil {
			s.logger = l
		}
	}
}

// DebugMode reports whether debug mode is enabled.
func (s *Scene) DebugMode() bool { return s.debug }

// Update runs one ebiten tick: it reads mouse and touch input, then
// advances timers and tweens by 1/TPS seconds.
func (s *Scene) Update() {
	s.step(float32(1.0/float64(ebiten.TPS())), true)
}

// Advance runs one frame of dt seconds without polling input devices. Only
// injected input is processed. Intended for headless use and tests.
func (s *Scene) Advance(dt float32) {
	s.step(dt, false)
}

func (s *Scene) step(dt float32, readDevices bool) {
	// Refresh world transforms first so hit testing has accurate positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput(dt, readDevices)
	s.runner.Update(dt)
}
