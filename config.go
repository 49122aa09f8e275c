package carousel

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	// ErrNoItems is returned when a carousel is created without items.
	ErrNoItems = errors.New("carousel: item list is empty")
	// ErrInitialIndex is returned when the initial index is outside [0, N-1].
	ErrInitialIndex = errors.New("carousel: initial index out of range")
	// ErrCooldown is returned for a negative cooldown.
	ErrCooldown = errors.New("carousel: cooldown must not be negative")
	// ErrMinSwipe is returned for a negative minimum swipe distance.
	ErrMinSwipe = errors.New("carousel: minimum swipe distance must not be negative")
)

// Config is the static, per-instance configuration of a carousel.
type Config struct {
	// InitialIndex is the item selected at creation.
	InitialIndex int `koanf:"initialindex"`
	// Cooldown is how long navigation is locked after an accepted transition.
	// It should match the visual transition duration.
	Cooldown time.Duration `koanf:"cooldown"`
	// MinSwipeDistance is the horizontal travel, in pixels, below which a
	// touch gesture is a tap rather than a swipe.
	MinSwipeDistance float64 `koanf:"minswipedistance"`
}

// DefaultConfig returns the agent carousel's tuning: first item selected,
// 500ms cooldown, 50px swipe threshold.
func DefaultConfig() Config {
	return Config{
		Cooldown:         DefaultCooldown,
		MinSwipeDistance: DefaultMinSwipeDistance,
	}
}

// Validate checks the configuration against an item count.
func (c Config) Validate(n int) error {
	if n < 1 {
		return ErrNoItems
	}
	if c.InitialIndex < 0 || c.InitialIndex >= n {
		return errors.Wrapf(ErrInitialIndex, "index %d with %d items", c.InitialIndex, n)
	}
	if c.Cooldown < 0 {
		return errors.Wrapf(ErrCooldown, "got %s", c.Cooldown)
	}
	if c.MinSwipeDistance < 0 {
		return errors.Wrapf(ErrMinSwipe, "got %v", c.MinSwipeDistance)
	}
	return nil
}

// --- Options ---

type options struct {
	config    Config
	scheduler Scheduler
	logger    *zap.Logger
}

// Option configures a Controller.
type Option func(o *options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithInitialIndex selects the item shown first.
func WithInitialIndex(index int) Option {
	return func(o *options) {
		o.config.InitialIndex = index
	}
}

// WithCooldown sets the transition lock duration.
func WithCooldown(d time.Duration) Option {
	return func(o *options) {
		o.config.Cooldown = d
	}
}

// WithMinSwipeDistance sets the swipe threshold in pixels.
func WithMinSwipeDistance(px float64) Option {
	return func(o *options) {
		o.config.MinSwipeDistance = px
	}
}

// WithScheduler sets the scheduler used for cooldown expiry. The default is a
// TimerScheduler on the wall clock.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
