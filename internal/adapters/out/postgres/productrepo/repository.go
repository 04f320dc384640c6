package productrepo

import (
	"context"
	"database/sql"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/product"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves catalog changes to an existing product. The stock counters are
// deliberately excluded: they belong to the ledger operations below.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "price": dto.Price})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve earmarks qty units in one conditional UPDATE gated on current
// availability. Zero rows affected means either the product is unknown or the
// stock ran out; a re-read distinguishes the two and, on denial, supplies the
// availability for the error.
func (r *GormProductRepository) Reserve(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND stock - reserved_stock >= ?", id.Bytes(), qty).
		UpdateColumn("reserved_stock", gorm.Expr("reserved_stock + ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return errs.NewInsufficientStockError(id.String(), qty, current.AvailableStock())
}

// Release returns qty earmarked units, flooring reserved_stock at zero. The
// old counter is captured in a CTE so the caller learns whether flooring
// happened without a second round trip.
func (r *GormProductRepository) Release(ctx context.Context, id kernel.UUID, qty int) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var floored bool
	row := r.db.WithContext(ctx).Raw(`
		WITH old AS (
			SELECT reserved_stock FROM products WHERE id = @id
		)
		UPDATE products
		SET reserved_stock = GREATEST(reserved_stock - @qty, 0)
		WHERE id = @id
		RETURNING (SELECT reserved_stock FROM old) < @qty
	`, map[string]any{"id": id.Bytes(), "qty": qty}).Row()

	if err := row.Scan(&floored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errs.NewObjectNotFoundError("product", id.String())
		}
		return false, err
	}

	return floored, nil
}

// CommitStock removes qty units from the warehouse: stock and reserved_stock
// both drop by qty, floored at zero, and reserved is clamped to never exceed
// the remaining stock.
func (r *GormProductRepository) CommitStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumns(map[string]any{
			"stock":          gorm.Expr("GREATEST(stock - ?, 0)", qty),
			"reserved_stock": gorm.Expr("LEAST(GREATEST(reserved_stock - ?, 0), GREATEST(stock - ?, 0))", qty, qty),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
