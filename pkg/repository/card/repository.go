// Package card defines the persistence contract for the card service.
package card

import (
	"context"

	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
)

// Repository is the entity store for cards.
type Repository interface {
	Create(ctx context.Context, create dto.CardCreate) (*dto.CardRead, error)
	Get(ctx context.Context, id int64) (*dto.CardRead, error)
	Update(ctx context.Context, id int64, update dto.CardUpdate) (*dto.CardRead, error)
	Delete(ctx context.Context, id int64) error
	ExistsByPan(ctx context.Context, pan string) (bool, error)
	ExistsByAccountAndType(ctx context.Context, accountID int64, cardType domain.CardType) (bool, error)
	List(ctx context.Context, filter dto.CardListFilter, page, size int) (*dto.Page[dto.CardRead], error)
}
