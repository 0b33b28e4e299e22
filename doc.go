// Package holdmenu implements long-press context menus for [Ebitengine]
// scenes.
//
// A long press on a wrapped element lifts it above the screen, bounces it,
// blurs and shrinks everything behind it, and opens a vertical list of
// actions next to it. Tapping the background or an action plays the
// entrance in reverse and puts everything back.
//
// # Quick start
//
//	scene := holdmenu.NewScene(holdmenu.Size{Width: 390, Height: 844})
//	card := holdmenu.NewBox("card", 200, 80, holdmenu.ColorWhite)
//	card.SetPosition(95, 300)
//	scene.Content().AddChild(card)
//
//	holdmenu.NewContextMenu(scene, card, []holdmenu.MenuItem{
//		{Text: "Share", Icon: "share", OnActivate: share},
//		{Text: "Delete", IsDestructive: true, OnActivate: remove},
//	}, holdmenu.Layout{BorderRadius: 12})
//
//	holdmenu.Run(scene, holdmenu.RunConfig{Title: "Demo", Width: 390, Height: 844})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene
//
// A [Scene] has two layers under its root: [Scene.Content] for the normal
// screen and [Scene.Overlay] for lifted elements and menus. Every visual
// element is a [Node]; children inherit their parent's transform and alpha.
//
// # Sessions
//
// Each time a menu is shown, its [ContextMenu] creates a [MenuSession] that
// moves through the phases Idle, PressOverlay, Bouncing, Revealing,
// Revealed, Closing and Closed. Phases only move forward, except that a
// press released early returns from PressOverlay to Idle. Scrolling is
// disabled through [Config.ScrollLock] when the menu opens and re-enabled
// exactly once when it closes. Only the first action pressed in a session
// runs.
//
// # Animation
//
// Animations implement [Animator]. [JoinAll] runs several at once and
// completes when all of them have; [Sequence] runs them in order. Tweens
// (via [gween]) and timers are driven by the scene's [Runner], so
// [Scene.Advance] can step a scene deterministically in tests.
//
// # Configuration
//
// [DefaultConfig] holds the animation timings and metrics. [LoadConfig]
// overlays YAML onto the defaults, for example:
//
//	revealDelay: 150ms
//	screenShrinkFactor: 0.9
//	clampToViewport: true
//
// # Logging
//
// Sessions log phase changes and placement decisions through
// [go.uber.org/zap]. Logging is off by default; use [Scene.SetLogger] or
// [Scene.SetDebugMode].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package holdmenu
