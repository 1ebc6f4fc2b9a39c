package account

import (
	"context"
	"errors"
	"strings"

	"github.com/bankingsystem/services/infra/repository"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/account"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates the GORM-backed account store.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	m := model.Account{
		Iban:       create.Iban,
		BicSwift:   create.BicSwift,
		CustomerID: create.CustomerID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, "acc_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.E(domain.NotFound, "account.not.found", id)
		}
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Update(ctx context.Context, id int64, update dto.AccountUpdate) (*dto.AccountRead, error) {
	updates := make(map[string]any)
	if update.Iban != nil {
		updates["acc_iban"] = *update.Iban
	}
	if update.BicSwift != nil {
		updates["acc_bicswift"] = *update.BicSwift
	}
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.Account{}).
			Where("acc_id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, id)
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Account{}, "acc_id = ?", id).Error
}

func (r *gormRepository) ExistsByIban(ctx context.Context, iban string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("acc_iban = ?", iban).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) List(ctx context.Context, filter dto.AccountListFilter, page, size int) (*dto.Page[dto.AccountRead], error) {
	page, size = repository.NormalizePage(page, size)

	query := r.db.WithContext(ctx).Model(&model.Account{}).Scopes(withFilters(filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.Account
	if err := query.Scopes(repository.Paginate(page, size)).Order("acc_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]dto.AccountRead, 0, len(rows))
	for i := range rows {
		items = append(items, *mapModelToDTO(&rows[i]))
	}
	return &dto.Page[dto.AccountRead]{
		Items:         items,
		TotalElements: total,
		TotalPages:    repository.TotalPages(total, size),
		Page:          page,
		Size:          size,
	}, nil
}

// withFilters composes the optional account filters: customer equality and
// IBAN substring. The cardAlias query parameter never reaches this layer; the
// service accepts and ignores it.
func withFilters(f dto.AccountListFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.CustomerID != nil {
			tx = tx.Where("acc_cust_id = ?", *f.CustomerID)
		}
		if iban := strings.TrimSpace(f.Iban); iban != "" {
			tx = tx.Where("acc_iban LIKE ?", "%"+iban+"%")
		}
		return tx
	}
}

func mapModelToDTO(m *model.Account) *dto.AccountRead {
	return &dto.AccountRead{
		AccountID:  m.AccountID,
		Iban:       m.Iban,
		BicSwift:   m.BicSwift,
		CustomerID: m.CustomerID,
		CreatedAt:  m.CreatedAt,
	}
}
