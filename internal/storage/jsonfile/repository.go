package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"ordercli/internal/config"
	"ordercli/internal/domain"
	"ordercli/internal/pkg/retry"
)

// Repository keeps every order in memory and mirrors the full set into a
// single JSON file on each save. It assumes a single process: there is no
// file locking, so concurrent invocations can race on the read-modify-write
// cycle (last writer wins).
type Repository struct {
	path        string
	retryPolicy config.Retry
	logger      *zap.Logger

	orders []*domain.Order
}

// New loads the storage file at path. An absent, unreadable or malformed
// file starts the repository empty instead of failing: for a local
// single-user tool, refusing to boot is worse than dropping bad state.
func New(path string, retryPolicy config.Retry, logger *zap.Logger) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	r := &Repository{
		path:        path,
		retryPolicy: retryPolicy,
		logger:      logger,
	}
	r.orders = r.load()
	return r, nil
}

func (r *Repository) NextID() string {
	return fmt.Sprintf("ORD-%04d", len(r.orders)+1)
}

// Save appends the order and rewrites the whole file. If the flush keeps
// failing after retries, the append is rolled back and the error returned,
// so memory never disagrees with disk.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)

	err := r.flush()
	if err != nil && r.retryPolicy.Attempts > 0 {
		r.logger.Warn("storage flush failed, retrying",
			zap.String("path", r.path),
			zap.Error(err),
		)
		err = retry.Do(ctx, r.retryPolicy, r.flush)
	}
	if err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return fmt.Errorf("flush orders to %s: %w", r.path, err)
	}

	r.logger.Info("order saved",
		zap.String("order_id", order.ID()),
		zap.Int("stored", len(r.orders)),
	)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *Repository) FindAll(_ context.Context) ([]*domain.Order, error) {
	return append([]*domain.Order(nil), r.orders...), nil
}

func (r *Repository) load() []*domain.Order {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("storage file unreadable, starting empty",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return nil
	}

	var records []domain.OrderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn("storage file malformed, starting empty",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return nil
	}

	orders := make([]*domain.Order, 0, len(records))
	for _, rec := range records {
		o, err := domain.OrderFromRecord(rec)
		if err != nil {
			r.logger.Warn("storage file malformed, starting empty",
				zap.String("path", r.path),
				zap.Error(err),
			)
			return nil
		}
		orders = append(orders, o)
	}
	return orders
}

// flush rewrites the full order set, pretty-printed. A failure mid-write can
// leave a truncated file behind; with a single writer and the retry budget
// above that is an accepted limitation, not something we lock around.
func (r *Repository) flush() error {
	records := make([]domain.OrderRecord, 0, len(r.orders))
	for _, o := range r.orders {
		records = append(records, o.Record())
	}

	f, err := os.Create(r.path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
