package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// FetchByIDs retrieves the orders matching the given ids, with their lines,
// ordered by id. Ids without a matching row are simply absent from the result.
func (r *GormOrderRepository) FetchByIDs(ctx context.Context, ids []int64) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("id IN ?", ids).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CompleteOrders transitions the given orders from Submitted to Finished in a
// single conditional bulk update. Rows not currently Submitted are left
// untouched, which makes the operation idempotent. Returns the number of rows
// actually changed.
func (r *GormOrderRepository) CompleteOrders(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id IN ? AND status = ?", ids, int(order.Submitted)).
		Update("status", int(order.Finished))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
