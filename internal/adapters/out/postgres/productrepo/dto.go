// Package productrepo persists the product catalog and its inventory
// counters. The three ledger operations are implemented as single
// conditional UPDATEs so concurrent carts contend at the database, not in
// application memory.
package productrepo

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Price         int64
	Stock         int
	ReservedStock int
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Price:         p.Price(),
		Stock:         p.Stock(),
		ReservedStock: p.ReservedStock(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.Stock, dto.ReservedStock)
}
