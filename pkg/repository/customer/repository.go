// Package customer defines the persistence contract for the customer service.
package customer

import (
	"context"

	"github.com/bankingsystem/services/pkg/dto"
)

// Repository is the entity store for customers. Get and Update return a
// domain NotFound error when the id does not exist.
type Repository interface {
	Create(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error)
	Get(ctx context.Context, id int64) (*dto.CustomerRead, error)
	Update(ctx context.Context, id int64, update dto.CustomerUpdate) (*dto.CustomerRead, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter dto.CustomerListFilter, page, size int) (*dto.Page[dto.CustomerRead], error)
}
