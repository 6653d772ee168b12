package monitoring

import (
	"context"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"
)

const PING_TIMEOUT = 5 * time.Second

// Pinger is implemented by providers that can probe their upstream.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamHealth holds one flag per capability. The set of capabilities is
// fixed at construction, so reads need no lock.
type UpstreamHealth struct {
	flags map[string]*atomic.Bool
}

func NewUpstreamHealth(capabilities ...string) *UpstreamHealth {
	h := &UpstreamHealth{flags: make(map[string]*atomic.Bool, len(capabilities))}
	for _, c := range capabilities {
		flag := &atomic.Bool{}
		flag.Store(true)
		h.flags[c] = flag
		UpstreamHealthy.WithLabelValues(c).Set(1)
	}
	return h
}

func (h *UpstreamHealth) Flag(capability string) *atomic.Bool {
	return h.flags[capability]
}

// Snapshot returns "ok" or "degraded" for every tracked capability.
func (h *UpstreamHealth) Snapshot() map[string]string {
	if h == nil || len(h.flags) == 0 {
		return nil
	}
	out := make(map[string]string, len(h.flags))
	for c, flag := range h.flags {
		if flag.Load() {
			out[c] = "ok"
		} else {
			out[c] = "degraded"
		}
	}
	return out
}

func (h *UpstreamHealth) Capabilities() []string {
	names := make([]string, 0, len(h.flags))
	for c := range h.flags {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// MonitorUpstreamHealth probes pinger every interval until ctx is done.
func MonitorUpstreamHealth(ctx context.Context, capability string, pinger Pinger, healthy *atomic.Bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			CheckUpstream(ctx, capability, pinger, healthy)
		}
	}
}

// CheckUpstream runs a single probe and records the outcome.
func CheckUpstream(ctx context.Context, capability string, pinger Pinger, healthy *atomic.Bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, PING_TIMEOUT)
	defer cancel()

	err := pinger.Ping(pingCtx)
	isHealthy := err == nil
	wasHealthy := healthy.Swap(isHealthy)

	if isHealthy {
		UpstreamHealthy.WithLabelValues(capability).Set(1)
		if !wasHealthy {
			slog.Info("[HealthCheck] Upstream recovered", slog.String("capability", capability))
		}
	} else {
		UpstreamHealthy.WithLabelValues(capability).Set(0)
		slog.Warn("[HealthCheck] Upstream is unhealthy",
			slog.String("capability", capability),
			slog.String("error", err.Error()))
	}
	return isHealthy
}
