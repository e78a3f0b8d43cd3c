// Package ntpcheck watches the local wall clock against an NTP pool.
//
// Post ordering in timelines is by wall-clock seconds assigned on the
// client, so a primary running on a badly drifted clock produces confusing
// timelines. The check is advisory: it only logs.
package ntpcheck

import (
	"context"
	"log/slog"
	"time"

	"github.com/beevik/ntp"
)

const (
	defaultPool      = "pool.ntp.org"
	defaultInterval  = 60 * time.Minute
	defaultThreshold = 500 * time.Millisecond
)

// Checker periodically queries an NTP pool and warns when the local clock
// offset exceeds the threshold. The zero value is not usable; use New.
type Checker struct {
	pool      string
	interval  time.Duration
	threshold time.Duration

	// queryFunc is swappable for tests.
	queryFunc func(pool string) (time.Duration, error)
}

// New returns a checker with the default pool, interval, and threshold.
func New() *Checker {
	return &Checker{
		pool:      defaultPool,
		interval:  defaultInterval,
		threshold: defaultThreshold,
		queryFunc: queryOffset,
	}
}

// Run checks once immediately, then on every interval tick until ctx is
// cancelled. Query failures are logged at debug level; an offline primary
// is not an error.
func (c *Checker) Run(ctx context.Context) {
	c.check()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.check()
		}
	}
}

func (c *Checker) check() {
	offset, err := c.queryFunc(c.pool)
	if err != nil {
		slog.Debug("ntp query failed", "pool", c.pool, "err", err)
		return
	}
	if offset < 0 {
		offset = -offset
	}
	if offset > c.threshold {
		slog.Warn("local clock is drifting; post timestamps will be skewed",
			"offset", offset, "threshold", c.threshold)
	}
}

func queryOffset(pool string) (time.Duration, error) {
	resp, err := ntp.Query(pool)
	if err != nil {
		return 0, err
	}
	if err := resp.Validate(); err != nil {
		return 0, err
	}
	return resp.ClockOffset, nil
}
