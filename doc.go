// Package affordance maps interaction states onto perceptible feedback:
// colors, scales and rotations that tween toward per-state values, and
// one-shot cues such as sounds that fire on state changes.
//
// # Data flow
//
// Interaction signals feed a [StateProvider], which computes one of six
// [StateIndex] values per tick and notifies subscribers only when it changes.
// Receivers look up the new state in a [ThemeTable] and either retarget a
// [TweenableVariable] ([TweenReceiver]) or fire enter/exit payloads into a
// [OneShotSink] ([OneShotReceiver]).
//
//	provider := affordance.NewStateProvider(affordance.NewEbitenPointer(
//		affordance.HitRect{X: 100, Y: 100, Width: 120, Height: 40}))
//
//	tint := affordance.NewThemeData[affordance.Color]()
//	tint.Set(affordance.StateIdle, affordance.SteadyEntry(affordance.ColorWhite))
//	tint.Set(affordance.StateHovered, affordance.SteadyEntry(affordance.Color{R: 0.8, G: 0.9, B: 1, A: 1}))
//
//	var op ebiten.DrawImageOptions
//	stage := affordance.NewStage(affordance.StageConfig{})
//	stage.AddProvider(provider)
//	stage.AddReceiver(affordance.NewColorReceiver("tint", provider,
//		affordance.NewInlineTheme(tint), affordance.ColorScaleSink{Target: &op.ColorScale}))
//
// Call [Stage.Update] once per frame from the game's Update.
//
// # Scheduling
//
// Blend steps run on a bounded worker pool ([Scheduler]). A frame publishes
// the previous frame's results first ([Scheduler.Complete]), so sinks always
// run on the update goroutine and never see a half-computed value. Each
// variable has at most one job in flight.
//
// # Modifier states
//
// Activated layers on Selected and Selected layers on Hovered. One-shot
// receivers skip the exit cue for Selected→Activated and Hovered→Selected,
// and the enter cue for Hovered→Selected and Selected→Hovered. See
// [ExitSuppressed] and [EnterSuppressed]. Continuous receivers always
// retarget.
//
// # Themes
//
// Theme data can be inline or a shared, hot-reloadable asset
// ([SharedTheme]) loaded from YAML by a [ThemeLibrary]. Missing entries are
// a normal outcome and produce no effect.
//
// Tweens with a fixed duration use [gween] easing functions; audio cues play
// through [beep]; the Donburi bridge lives in affordance/ecs.
//
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
package affordance
