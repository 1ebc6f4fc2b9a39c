// Package account defines the persistence contract for the account service.
package account

import (
	"context"

	"github.com/bankingsystem/services/pkg/dto"
)

// Repository is the entity store for accounts. The IBAN uniqueness check here
// is a fast-fail; the unique index on the table is the real guarantee.
type Repository interface {
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)
	Get(ctx context.Context, id int64) (*dto.AccountRead, error)
	Update(ctx context.Context, id int64, update dto.AccountUpdate) (*dto.AccountRead, error)
	Delete(ctx context.Context, id int64) error
	ExistsByIban(ctx context.Context, iban string) (bool, error)
	List(ctx context.Context, filter dto.AccountListFilter, page, size int) (*dto.Page[dto.AccountRead], error)
}
