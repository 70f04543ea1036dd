package guard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/google/uuid"
)

// BlockCache is an advisory fast path in front of the persistent block list.
// A miss or an error always falls through to the repository; the cache is
// never trusted to be complete.
type BlockCache interface {
	Get(ctx context.Context, ip string) (time.Time, bool, error)
	Set(ctx context.Context, ip string, blockedUntil time.Time) error
}

type Config struct {
	MaxAttempts   int
	AttemptWindow time.Duration
	BlockDuration time.Duration
}

// Guard owns the login-attempt ledger and the IP block list. Counting is
// best-effort under concurrency; the persistent store is authoritative.
type Guard struct {
	repo      domain.GuardRepository
	cache     BlockCache
	logger    *slog.Logger
	allowlist map[string]struct{}
	cfg       Config
}

// New builds a guard. cache may be nil, which disables the fast path.
// Loopback addresses are allow-listed and can never be blocked.
func New(repo domain.GuardRepository, cache BlockCache, logger *slog.Logger, cfg Config) *Guard {
	return &Guard{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		allowlist: map[string]struct{}{"127.0.0.1": {}, "::1": {}},
		cfg:       cfg,
	}
}

// CheckIP rejects callers with an active block. Cache errors fall through to
// the repository; a repository error fails closed so an unreadable block list
// never opens the login path.
func (g *Guard) CheckIP(ctx context.Context, ip string) error {
	if g.isAllowlisted(ip) {
		return nil
	}

	now := time.Now().UTC()

	if g.cache != nil {
		until, ok, err := g.cache.Get(ctx, ip)
		if err != nil {
			g.logger.Warn("block cache read failed", "ip", ip, "error", err)
		} else if ok && until.After(now) {
			return autherror.ErrIPBlocked
		}
	}

	block, err := g.repo.GetActiveBlock(ctx, ip, now)
	if err != nil {
		return fmt.Errorf("failed to read ip block list: %w", err)
	}
	if block != nil {
		g.cacheBlock(ctx, ip, block.BlockedUntil)
		return autherror.ErrIPBlocked
	}

	return nil
}

// CheckRate runs before credential verification so a caller over the
// threshold never consumes a bcrypt round.
func (g *Guard) CheckRate(ctx context.Context, ip, username string) error {
	if g.isAllowlisted(ip) {
		return nil
	}

	now := time.Now().UTC()

	count, err := g.repo.CountRecentFailedAttempts(ctx, ip, username, now.Add(-g.cfg.AttemptWindow))
	if err != nil {
		return fmt.Errorf("failed to check login attempts: %w", err)
	}
	if count >= g.cfg.MaxAttempts {
		if err := g.block(ctx, ip, now); err != nil {
			g.logger.Error("failed to write ip block", "ip", ip, "error", err)
		}
		return autherror.ErrTooManyLoginAttempts
	}

	return nil
}

// RegisterFailure appends to the attempt ledger and trips the block once the
// sliding-window count reaches the threshold. It reports whether the caller
// is now blocked. Ledger failures are logged locally and never interrupt the
// login response path.
func (g *Guard) RegisterFailure(ctx context.Context, ip, username string) bool {
	now := time.Now().UTC()

	if err := g.repo.RecordLoginAttempt(ctx, ip, username, now); err != nil {
		g.logger.Error("failed to record login attempt",
			"ip", ip, "username", username, "error", err)
	}

	if g.isAllowlisted(ip) {
		return false
	}

	count, err := g.repo.CountRecentFailedAttempts(ctx, ip, username, now.Add(-g.cfg.AttemptWindow))
	if err != nil {
		g.logger.Warn("failed to count login attempts", "ip", ip, "error", err)
		return false
	}
	if count >= g.cfg.MaxAttempts {
		if err := g.block(ctx, ip, now); err != nil {
			g.logger.Error("failed to write ip block", "ip", ip, "error", err)
		}
		return true
	}

	return false
}

// CleanExpiredBlocks removes rows whose expiry has passed. Reads already
// ignore expired rows; this only keeps the table small.
func (g *Guard) CleanExpiredBlocks(ctx context.Context) (int64, error) {
	return g.repo.DeleteExpiredBlocks(ctx, time.Now().UTC())
}

func (g *Guard) block(ctx context.Context, ip string, now time.Time) error {
	blk := &domain.IPBlock{
		ID:           uuid.NewString(),
		IPAddress:    ip,
		BlockedUntil: now.Add(g.cfg.BlockDuration),
	}
	if err := g.repo.InsertBlock(ctx, blk); err != nil {
		return err
	}
	g.cacheBlock(ctx, ip, blk.BlockedUntil)
	return nil
}

func (g *Guard) cacheBlock(ctx context.Context, ip string, until time.Time) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, ip, until); err != nil {
		g.logger.Warn("block cache write failed", "ip", ip, "error", err)
	}
}

func (g *Guard) isAllowlisted(ip string) bool {
	_, ok := g.allowlist[ip]
	return ok
}
