// Package provider supplies upcoming holiday events. The remote
// implementation asks a Gemini model for the next major Chinese holidays; a
// deterministic local fallback covers missing credentials and remote
// failures, so Fetch on the assembled provider never hard-fails.
package provider

import (
	"context"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

// Provider returns an ordered sequence of upcoming holiday events.
type Provider interface {
	Fetch(ctx context.Context) ([]models.Event, error)
}

// withFallback wraps an optional remote provider with the deterministic
// fallback set.
type withFallback struct {
	remote Provider
	clock  timex.Clock
	log    logging.Logger
}

// New assembles the holiday provider. remote may be nil (no credentials), in
// which case every Fetch serves the fallback set.
func New(remote Provider, clock timex.Clock, log logging.Logger) Provider {
	return &withFallback{remote: remote, clock: clock, log: log}
}

func (p *withFallback) Fetch(ctx context.Context) ([]models.Event, error) {
	if p.remote == nil {
		p.log.Warn(ctx, "no API key configured, serving fallback holidays")
		return FallbackHolidays(p.clock.Now()), nil
	}

	events, err := p.remote.Fetch(ctx)
	if err != nil {
		p.log.Error(ctx, "remote holiday fetch failed, serving fallback", "error", err)
		return FallbackHolidays(p.clock.Now()), nil
	}
	return events, nil
}
