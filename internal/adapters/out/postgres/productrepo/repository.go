package productrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
// The repository is read-only; catalog maintenance happens in another
// subsystem.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
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

// GetAllByIDs retrieves the products for the given identifiers in one
// query. IDs without a matching row are silently absent from the result.
func (r *GormProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
