package controller

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/goliatone/go-formctl/internal/logger"
	"github.com/goliatone/go-formctl/pkg/validation"
)

// DefaultBannerDuration is how long a banner stays visible.
const DefaultBannerDuration = 5000 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithPresenter sets the feedback presenter. The default discards feedback.
func WithPresenter(presenter Presenter) Option {
	return func(c *Controller) {
		if presenter != nil {
			c.presenter = presenter
		}
	}
}

// WithValidator overrides the field validator.
func WithValidator(v *validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithClock sets the clock used to hide banners.
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithBannerDuration overrides how long banners stay visible.
func WithBannerDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.bannerDuration = d
		}
	}
}

// WithLogger attaches a logger; submission failures are logged at error level.
func WithLogger(log logger.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithSubmitGuard rejects a Submit while another one is in flight.
func WithSubmitGuard() Option {
	return func(c *Controller) {
		c.guard = true
	}
}

// WithPhaseObserver registers fn to be called on every phase transition. fn
// runs with the controller locked and must not call back into it.
func WithPhaseObserver(fn func(Phase)) Option {
	return func(c *Controller) {
		c.onPhase = fn
	}
}
