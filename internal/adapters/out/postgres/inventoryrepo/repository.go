package inventoryrepo

import (
	"context"
	"errors"

	"aquaflow/internal/adapters/out/postgres/pgerr"
	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lot to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, lot *inventory.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(lot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add lot", err)
	}

	r.tracker.TrackAggregate(lot.ID(), lot)
	return nil
}

// Update saves an existing lot to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, lot *inventory.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(lot)
	result := r.db.WithContext(ctx).
		Model(&LotDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"quantity":      dto.Quantity,
			"reorder_point": dto.ReorderPoint,
			"minimum_stock": dto.MinimumStock,
			"expires_at":    dto.ExpiresAt,
		})
	if result.Error != nil {
		return pgerr.Translate("update lot", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(lot.ID(), lot)
	return nil
}

// Get retrieves a lot by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Lot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProductID retrieves the active lot for a product without locking. Used
// for the advisory stock check at order creation.
func (r *GormInventoryRepository) GetByProductID(ctx context.Context, productID kernel.UUID) (*inventory.Lot, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdateByProductIDs retrieves the lots for the given products and locks
// their rows until the current transaction ends. Rows are locked in ascending
// product-id order regardless of input order, so concurrent confirmations
// acquire lot locks in the same sequence and cannot deadlock each other.
func (r *GormInventoryRepository) GetForUpdateByProductIDs(ctx context.Context, productIDs []kernel.UUID) ([]*inventory.Lot, error) {
	ids := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, productID.Bytes())
	}

	var dtos []LotDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id IN ?", ids).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("lock lots", err)
	}

	found := make(map[uuid.UUID]struct{}, len(dtos))
	for _, dto := range dtos {
		found[dto.ProductID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("lot", id.String())
		}
	}

	lots := make([]*inventory.Lot, 0, len(dtos))
	for _, dto := range dtos {
		lot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}

	return lots, nil
}

// GetAllBelowReorderPoint retrieves lots whose quantity has reached the
// reorder point, emptiest first.
func (r *GormInventoryRepository) GetAllBelowReorderPoint(ctx context.Context) ([]*inventory.Lot, error) {
	var dtos []LotDTO
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_point").
		Order("quantity").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lots := make([]*inventory.Lot, 0, len(dtos))
	for _, dto := range dtos {
		lot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}

	return lots, nil
}
