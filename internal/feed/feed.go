package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// Feed copies full collections from the database into the store
type Feed struct {
	db       *gorm.DB
	store    *store.Store
	log      *zap.Logger
	interval time.Duration
}

// New creates a feed that polls the database every interval
func New(db *gorm.DB, s *store.Store, log *zap.Logger, interval time.Duration) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{db: db, store: s, log: log, interval: interval}
}

// Refresh loads one collection and publishes it.
// On failure the store keeps the collection it already had.
func (f *Feed) Refresh(ctx context.Context, c store.Collection) error {
	var err error
	switch c {
	case store.Properties:
		var records []models.Property
		if err = f.load(ctx, c, &records); err == nil {
			f.store.PublishProperties(records)
		}
	case store.Tenants:
		var records []models.Tenant
		if err = f.load(ctx, c, &records); err == nil {
			f.store.PublishTenants(records)
		}
	case store.Expenses:
		var records []models.Expense
		if err = f.load(ctx, c, &records); err == nil {
			f.store.PublishExpenses(records)
		}
	default:
		err = fmt.Errorf("unknown collection %q", c)
	}

	if err != nil {
		f.log.Warn("collection sync failed, keeping last snapshot",
			zap.String("collection", string(c)),
			zap.Error(err))
		return err
	}
	return nil
}

// RefreshAll refreshes every collection, continuing past failures.
// The first error is returned.
func (f *Feed) RefreshAll(ctx context.Context) error {
	var first error
	for _, c := range store.Collections {
		if err := f.Refresh(ctx, c); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Run refreshes everything now and then on every tick until ctx is done
func (f *Feed) Run(ctx context.Context) {
	f.log.Info("sync feed started", zap.Duration("interval", f.interval))
	_ = f.RefreshAll(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.log.Info("sync feed stopped")
			return
		case <-ticker.C:
			_ = f.RefreshAll(ctx)
		}
	}
}

func (f *Feed) load(ctx context.Context, c store.Collection, dest interface{}) error {
	err := f.db.Session(&gorm.Session{Logger: f.db.Logger.LogMode(logger.Silent)}).
		WithContext(ctx).
		Clauses(hints.CommentBefore("select", "gestorinmo:feed:"+string(c))).
		Order("created_at, id").
		Find(dest).Error
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c, err)
	}
	return nil
}
