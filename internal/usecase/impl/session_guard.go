package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salepoint/config"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/usecase"
)

// expiryNotice is the user-facing message emitted when the guard
// detects a stale session.
const expiryNotice = "Your session has expired. Please sign in again."

// sessionGuard implements the GuardUsecase interface.
//
// The guard judges session freshness from purely local evidence: the
// three marker slots present and the login timestamp younger than the
// configured timeout. Once armed it re-checks on a coarse interval,
// trading a small staleness window for not checking on every read.
// The debounce state is owned by the instance, so independent guards
// (and tests) never interfere with each other.
type sessionGuard struct {
	medium   repository.KeyValue
	notifier service.Notifier
	logger   *slog.Logger

	timeout  time.Duration
	interval time.Duration
	debounce time.Duration
	now      func() time.Time

	mu         sync.Mutex
	armed      bool
	stop       chan struct{}
	evictors   []usecase.CacheEvictor
	lastNotice time.Time
}

// NewSessionGuard is the constructor for sessionGuard.
func NewSessionGuard(
	medium repository.KeyValue,
	notifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GuardUsecase {
	return &sessionGuard{
		medium:   medium,
		notifier: notifier,
		logger:   logger,
		timeout:  cfg.Session.Timeout,
		interval: cfg.Session.CheckInterval,
		debounce: cfg.Session.NoticeDebounce,
		now:      time.Now,
	}
}

// Arm starts the recurring validity check. Arming while armed is a
// no-op; a fresh login after expiry re-arms a stopped guard.
func (g *sessionGuard) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.armed {
		return
	}

	g.armed = true
	g.stop = make(chan struct{})
	go g.run(g.stop)

	g.logger.Debug("Session guard armed", slog.Duration("interval", g.interval))
}

// Disarm stops the recurring check and evicts dependent caches. This
// is the explicit-logout path: deliberate, so no notice is emitted.
func (g *sessionGuard) Disarm() {
	g.mu.Lock()
	g.stopLocked()
	evictors := append([]usecase.CacheEvictor(nil), g.evictors...)
	g.mu.Unlock()

	evictAll(evictors)
	g.logger.Debug("Session guard disarmed")
}

// CheckNow evaluates validity once. On failure it clears every
// dependent cache, emits a debounced notice, and stops the recurring
// check; a dead session does not keep re-checking itself.
func (g *sessionGuard) CheckNow() bool {
	if g.valid() {
		return true
	}

	g.mu.Lock()
	g.stopLocked()
	evictors := append([]usecase.CacheEvictor(nil), g.evictors...)
	notify := g.now().Sub(g.lastNotice) >= g.debounce
	if notify {
		g.lastNotice = g.now()
	}
	g.mu.Unlock()

	evictAll(evictors)
	if notify {
		g.notifier.Notify(expiryNotice)
	}
	g.logger.Info("Session invalid, dependent caches evicted")

	return false
}

// RegisterEvictor adds a dependent cache to clear on expiry.
func (g *sessionGuard) RegisterEvictor(evictor usecase.CacheEvictor) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.evictors = append(g.evictors, evictor)
}

// Armed reports whether the recurring check is running.
func (g *sessionGuard) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.armed
}

// run is the recurring check loop. It exits when its stop channel
// closes, either through Disarm or through CheckNow detecting expiry.
func (g *sessionGuard) run(stop chan struct{}) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			g.CheckNow()
		}
	}
}

// valid reports whether the stored marker is complete and young
// enough. No network call is involved.
func (g *sessionGuard) valid() bool {
	session := readSessionMarker(context.Background(), g.medium, g.logger)
	if !session.Complete() {
		return false
	}

	return g.now().Sub(session.LoginAt) < g.timeout
}

// stopLocked cancels the ticker goroutine. Callers hold g.mu.
func (g *sessionGuard) stopLocked() {
	if g.stop != nil {
		close(g.stop)
		g.stop = nil
	}
	g.armed = false
}

func evictAll(evictors []usecase.CacheEvictor) {
	for _, evictor := range evictors {
		evictor.EvictCaches()
	}
}
