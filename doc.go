// Package carousel is a host-agnostic interaction model for three-slot
// carousels: a fixed list of items cycles through left, selected and right
// positions in response to button clicks, background clicks, right-clicks and
// touch swipes.
//
// # Controller
//
// [Controller] owns the selected index and a transition cooldown. An accepted
// [Controller.Advance] updates the selection synchronously and locks
// navigation until the cooldown elapses; requests arriving in that window are
// dropped rather than queued:
//
//	ctrl, err := carousel.New(agents,
//		carousel.WithInitialIndex(1),
//		carousel.WithCooldown(500*time.Millisecond),
//	)
//	ctrl.Next()     // accepted, selection moves
//	ctrl.Previous() // dropped, still cooling down
//
// Cooldown expiry is delegated to a [Scheduler]. [TimerScheduler] uses wall
// clock timers; [FrameScheduler] runs due work inside Advance calls made by a
// frame loop, so everything stays on one goroutine. [Controller.Close]
// cancels a pending expiry.
//
// # Slots and styles
//
// [ComputeSlot] derives each item's slot from the selection. Presentation is
// kept out of the controller: a [StyleFunc] such as [AgentStyle] or
// [FeatureStyle] maps a slot and viewport width to a [Style], and
// [StyleTween] animates between styles with [gween].
//
// # Input
//
// [Binding] turns raw pointer samples into navigation, following the same
// per-pointer press/move/release state machine for mouse and touch.
// [ClassifyGesture] and [SwipeTracker] implement swipe detection. Synthetic
// input can be queued with the Inject methods and driven from JSON scripts
// via [LoadScript].
//
// # Stage
//
// [Stage] bundles a controller, a frame scheduler, a binding, animated card
// styles, a [VisibilityObserver] and a debounced viewport width for one
// carousel section. Hosts call [Stage.Update] each frame, forward input with
// [Stage.Feed], and draw [Stage.Cards]. The ebitenhost and tui packages are
// ready-made hosts.
//
// [gween]: https://github.com/tanema/gween
package carousel
