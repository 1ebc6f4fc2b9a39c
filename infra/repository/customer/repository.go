package customer

import (
	"context"
	"errors"

	"github.com/bankingsystem/services/infra/repository"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/customer"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates the GORM-backed customer store.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error) {
	m := model.Customer{
		FirstName: create.FirstName,
		LastName:  create.LastName,
		OtherName: create.OtherName,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Get(ctx context.Context, id int64) (*dto.CustomerRead, error) {
	var m model.Customer
	if err := r.db.WithContext(ctx).First(&m, "cust_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.E(domain.NotFound, "customer.not.found", id)
		}
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *gormRepository) Update(ctx context.Context, id int64, update dto.CustomerUpdate) (*dto.CustomerRead, error) {
	updates := make(map[string]any)
	if update.FirstName != nil {
		updates["cust_first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		updates["cust_last_name"] = *update.LastName
	}
	if update.OtherName != nil {
		updates["cust_other_name"] = *update.OtherName
	}
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.Customer{}).
			Where("cust_id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, id)
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "cust_id = ?", id).Error
}

func (r *gormRepository) List(ctx context.Context, filter dto.CustomerListFilter, page, size int) (*dto.Page[dto.CustomerRead], error) {
	page, size = repository.NormalizePage(page, size)

	query := r.db.WithContext(ctx).Model(&model.Customer{}).Scopes(withFilters(filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.Customer
	if err := query.Scopes(repository.Paginate(page, size)).Order("cust_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]dto.CustomerRead, 0, len(rows))
	for i := range rows {
		items = append(items, *mapModelToDTO(&rows[i]))
	}
	return &dto.Page[dto.CustomerRead]{
		Items:         items,
		TotalElements: total,
		TotalPages:    repository.TotalPages(total, size),
		Page:          page,
		Size:          size,
	}, nil
}

func mapModelToDTO(m *model.Customer) *dto.CustomerRead {
	return &dto.CustomerRead{
		CustomerID: m.CustomerID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		OtherName:  m.OtherName,
		CreatedAt:  m.CreatedAt,
	}
}
