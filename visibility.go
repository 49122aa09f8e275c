package carousel

// VisibilityConfig mirrors an intersection observer's options.
type VisibilityConfig struct {
	// Threshold is the fraction of the target's area that must intersect
	// the (margin-grown) viewport to count as visible.
	Threshold float64 `koanf:"threshold"`
	// RootMargin grows the viewport on every side, in pixels, so content
	// becomes visible slightly before it scrolls into view.
	RootMargin float64 `koanf:"rootmargin"`
}

// VisibilityObserver tracks whether a target region is in view and notifies
// subscribers when that changes. Hosts call Observe whenever the viewport or
// the target moves. Not safe for concurrent use.
type VisibilityObserver struct {
	cfg      VisibilityConfig
	visible  bool
	observed bool

	nextID   uint32
	handlers handlerList[func(bool)]
}

// NewVisibilityObserver creates an observer with the given options.
func NewVisibilityObserver(cfg VisibilityConfig) *VisibilityObserver {
	return &VisibilityObserver{cfg: cfg}
}

// IntersectionRatio returns the fraction of target's area inside viewport
// grown by margin. An empty target is visible iff it lies inside.
func IntersectionRatio(viewport, target Rect, margin float64) float64 {
	root := viewport.Grow(margin)
	if target.Empty() {
		if root.Contains(target.X, target.Y) {
			return 1
		}
		return 0
	}
	in := root.Intersection(target)
	if in.Empty() {
		return 0
	}
	return (in.Width * in.Height) / (target.Width * target.Height)
}

// Observe recomputes visibility. Subscribers are notified on the first call
// and whenever the result differs from the previous one. It returns the
// current visibility.
func (o *VisibilityObserver) Observe(viewport, target Rect) bool {
	ratio := IntersectionRatio(viewport, target, o.cfg.RootMargin)
	visible := ratio > 0 && ratio >= o.cfg.Threshold
	if o.observed && visible == o.visible {
		return visible
	}
	o.observed = true
	o.visible = visible
	for _, fn := range o.handlers.snapshot() {
		fn(visible)
	}
	return visible
}

// Visible returns the last computed visibility.
func (o *VisibilityObserver) Visible() bool {
	return o.visible
}

// OnChange registers a callback invoked with the new visibility.
func (o *VisibilityObserver) OnChange(fn func(visible bool)) CallbackHandle {
	o.nextID++
	id := o.nextID
	o.handlers.add(id, fn)
	return CallbackHandle{remove: func() { o.handlers.remove(id) }}
}

// --- Lazy mounting ---

// LazyMount decides when expensive per-item content (a 3D scene, a video)
// should be mounted, and tracks its loading state. Content mounts only for the
// selected item while its section is visible; once loaded it stays loaded.
type LazyMount struct {
	loaded map[string]bool
}

// NewLazyMount creates a tracker with every item loading.
func NewLazyMount() *LazyMount {
	return &LazyMount{loaded: make(map[string]bool)}
}

// ShouldMount reports whether item id's heavy content should be mounted.
func (m *LazyMount) ShouldMount(id string, selected, sectionVisible bool) bool {
	return selected && sectionVisible
}

// Loading reports whether a placeholder should be shown for id.
func (m *LazyMount) Loading(id string) bool {
	return !m.loaded[id]
}

// MarkLoaded records that id's content finished loading.
func (m *LazyMount) MarkLoaded(id string) {
	m.loaded[id] = true
}
