package card

import (
	"context"
	"errors"
	"strings"

	"github.com/bankingsystem/services/infra/repository"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/card"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates the GORM-backed card store.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, create dto.CardCreate) (*dto.CardRead, error) {
	m := model.Card{
		AccountID: create.AccountID,
		CardType:  string(create.Type),
		Pan:       create.Pan,
		Cvv:       create.Cvv,
		CardAlias: create.CardAlias,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Get(ctx context.Context, id int64) (*dto.CardRead, error) {
	var m model.Card
	if err := r.db.WithContext(ctx).First(&m, "card_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.E(domain.NotFound, "card.not.found", id)
		}
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Update(ctx context.Context, id int64, update dto.CardUpdate) (*dto.CardRead, error) {
	if update.CardAlias != nil {
		err := r.db.WithContext(ctx).
			Model(&model.Card{}).
			Where("card_id = ?", id).
			Update("card_alias", *update.CardAlias).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, id)
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Card{}, "card_id = ?", id).Error
}

func (r *gormRepository) ExistsByPan(ctx context.Context, pan string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("card_pan_code = ?", pan).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) ExistsByAccountAndType(ctx context.Context, accountID int64, cardType domain.CardType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("card_acc_id = ? AND card_type = ?", accountID, string(cardType)).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) List(ctx context.Context, filter dto.CardListFilter, page, size int) (*dto.Page[dto.CardRead], error) {
	page, size = repository.NormalizePage(page, size)

	query := r.db.WithContext(ctx).Model(&model.Card{}).Scopes(withFilters(filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.Card
	if err := query.Scopes(repository.Paginate(page, size)).Order("card_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]dto.CardRead, 0, len(rows))
	for i := range rows {
		items = append(items, *mapModelToDTO(&rows[i]))
	}
	return &dto.Page[dto.CardRead]{
		Items:         items,
		TotalElements: total,
		TotalPages:    repository.TotalPages(total, size),
		Page:          page,
		Size:          size,
	}, nil
}

// withFilters composes the optional card filters: PAN and alias substring,
// card-type and account equality.
func withFilters(f dto.CardListFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if pan := strings.TrimSpace(f.Pan); pan != "" {
			tx = tx.Where("card_pan_code LIKE ?", "%"+pan+"%")
		}
		if alias := strings.TrimSpace(f.CardAlias); alias != "" {
			tx = tx.Where("card_alias LIKE ?", "%"+alias+"%")
		}
		if f.Type != nil {
			tx = tx.Where("card_type = ?", string(*f.Type))
		}
		if f.AccountID != nil {
			tx = tx.Where("card_acc_id = ?", *f.AccountID)
		}
		return tx
	}
}

func mapModelToDTO(m *model.Card) *dto.CardRead {
	return &dto.CardRead{
		CardID:    m.CardID,
		AccountID: m.AccountID,
		Type:      domain.CardType(m.CardType),
		Pan:       m.Pan,
		Cvv:       m.Cvv,
		CardAlias: m.CardAlias,
		CreatedAt: m.CreatedAt,
	}
}
