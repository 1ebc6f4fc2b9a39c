// Package account implements the account service's business rules: the
// customer-existence check, IBAN validation and uniqueness, and the
// cards-exist guard on deletes.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bankingsystem/services/pkg/client"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/account"
)

// CustomerLookup asks the customer service whether a customer exists.
type CustomerLookup interface {
	GetCustomerByID(ctx context.Context, customerID int64) (*dto.CustomerRead, error)
}

// CardLookup asks the card service how many cards reference an account.
type CardLookup interface {
	GetCardsByAccount(ctx context.Context, accountID int64, page, size int) (*client.PageSummary, error)
}

type Service struct {
	repo      repo.Repository
	customers CustomerLookup
	cards     CardLookup
	logger    *slog.Logger
}

func New(repo repo.Repository, customers CustomerLookup, cards CardLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, customers: customers, cards: cards, logger: logger}
}

// CreateAccount runs the creation pipeline in a fixed order: the customer
// reference is checked before the local fields, so a request that is wrong in
// several ways surfaces the reference error first.
func (s *Service) CreateAccount(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	if err := s.validateCustomerExists(ctx, create.CustomerID); err != nil {
		return nil, err
	}
	if err := s.validateAccountFields(ctx, create); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created",
		"account_id", created.AccountID, "customer_id", created.CustomerID)
	return created, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int64) (*dto.AccountRead, error) {
	return s.repo.Get(ctx, accountID)
}

// ListAccounts returns a filtered page. The cardAlias filter is accepted by
// the endpoint but not applied: filtering accounts by a card attribute would
// need a second paginated fan-out to the card service.
// TODO: apply the cardAlias filter once the card service exposes a bulk
// accounts-by-alias lookup.
func (s *Service) ListAccounts(ctx context.Context, filter dto.AccountListFilter, page, size int) (*dto.Page[dto.AccountRead], error) {
	if filter.CardAlias != "" {
		s.logger.Debug("ignoring unsupported cardAlias filter", "card_alias", filter.CardAlias)
	}
	return s.repo.List(ctx, filter, page, size)
}

// UpdateAccount applies a partial update to iban/bicSwift. The customer
// reference and createdAt are immutable; the reference is not re-validated.
func (s *Service) UpdateAccount(ctx context.Context, accountID int64, update dto.AccountUpdate) (*dto.AccountRead, error) {
	if _, err := s.repo.Get(ctx, accountID); err != nil {
		return nil, err
	}
	update.Iban = normalize(update.Iban)
	update.BicSwift = normalize(update.BicSwift)
	return s.repo.Update(ctx, accountID, update)
}

// DeleteAccount removes an account unless any card still references it.
func (s *Service) DeleteAccount(ctx context.Context, accountID int64) error {
	if _, err := s.repo.Get(ctx, accountID); err != nil {
		return err
	}

	cards, err := s.cards.GetCardsByAccount(ctx, accountID, 0, 1)
	if err != nil {
		return fmt.Errorf("count cards for account %d: %w", accountID, err)
	}
	if cards.TotalElements > 0 {
		s.logger.Warn("account deletion rejected, cards exist",
			"account_id", accountID, "cards", cards.TotalElements)
		return domain.E(domain.HasDependents, "account.deletion.rejected", accountID)
	}

	if err := s.repo.Delete(ctx, accountID); err != nil {
		return err
	}
	s.logger.Info("account deleted", "account_id", accountID)
	return nil
}

// validateCustomerExists treats every lookup failure as "customer not found".
// Absence and unavailability are deliberately conflated; see DESIGN.md.
func (s *Service) validateCustomerExists(ctx context.Context, customerID int64) error {
	if customerID == 0 {
		return domain.E(domain.MissingReference, "missing.customer.id")
	}
	if _, err := s.customers.GetCustomerByID(ctx, customerID); err != nil {
		s.logger.Warn("customer lookup failed", "customer_id", customerID, "error", err)
		return domain.E(domain.ReferenceNotFound, "customer.not.found", customerID)
	}
	return nil
}

func (s *Service) validateAccountFields(ctx context.Context, create dto.AccountCreate) error {
	if strings.TrimSpace(create.Iban) == "" {
		return domain.E(domain.MissingField, "missing.iban.number")
	}
	exists, err := s.repo.ExistsByIban(ctx, create.Iban)
	if err != nil {
		return err
	}
	if exists {
		return domain.E(domain.DuplicateKey, "iban.number.exist")
	}
	if strings.TrimSpace(create.BicSwift) == "" {
		return domain.E(domain.MissingField, "missing.bicswift.number")
	}
	return nil
}

func normalize(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
