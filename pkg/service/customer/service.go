// Package customer implements the customer service's business rules: field
// validation on writes and the accounts-exist guard on deletes.
package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bankingsystem/services/pkg/client"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/customer"
)

// AccountLookup asks the account service how many accounts reference a
// customer. Implemented by client.AccountClient; stubbed in tests.
type AccountLookup interface {
	GetAccountsByCustomer(ctx context.Context, customerID int64, page, size int) (*client.PageSummary, error)
}

type Service struct {
	repo     repo.Repository
	accounts AccountLookup
	logger   *slog.Logger
}

func New(repo repo.Repository, accounts AccountLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, accounts: accounts, logger: logger}
}

// CreateCustomer validates the required name fields and persists the customer.
func (s *Service) CreateCustomer(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error) {
	if strings.TrimSpace(create.FirstName) == "" {
		return nil, domain.E(domain.MissingField, "first.name.validation")
	}
	if strings.TrimSpace(create.LastName) == "" {
		return nil, domain.E(domain.MissingField, "last.name.validation")
	}
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer created", "customer_id", created.CustomerID)
	return created, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID int64) (*dto.CustomerRead, error) {
	return s.repo.Get(ctx, customerID)
}

func (s *Service) ListCustomers(ctx context.Context, filter dto.CustomerListFilter, page, size int) (*dto.Page[dto.CustomerRead], error) {
	return s.repo.List(ctx, filter, page, size)
}

// UpdateCustomer applies a partial update: blank or absent fields leave the
// stored value unchanged. Id and createdAt are never touched.
func (s *Service) UpdateCustomer(ctx context.Context, customerID int64, update dto.CustomerUpdate) (*dto.CustomerRead, error) {
	if _, err := s.repo.Get(ctx, customerID); err != nil {
		return nil, err
	}
	update.FirstName = normalize(update.FirstName)
	update.LastName = normalize(update.LastName)
	update.OtherName = normalize(update.OtherName)
	return s.repo.Update(ctx, customerID, update)
}

// DeleteCustomer removes a customer unless any account still references it.
func (s *Service) DeleteCustomer(ctx context.Context, customerID int64) error {
	if _, err := s.repo.Get(ctx, customerID); err != nil {
		return err
	}

	accounts, err := s.accounts.GetAccountsByCustomer(ctx, customerID, 0, 1)
	if err != nil {
		return fmt.Errorf("count accounts for customer %d: %w", customerID, err)
	}
	if accounts.TotalElements > 0 {
		s.logger.Warn("customer deletion rejected, accounts exist",
			"customer_id", customerID, "accounts", accounts.TotalElements)
		return domain.E(domain.HasDependents, "customer.has.accounts", customerID)
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		return err
	}
	s.logger.Info("customer deleted", "customer_id", customerID)
	return nil
}

// normalize drops blank update values so they fall through to "unchanged".
func normalize(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
