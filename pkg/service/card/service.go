// Package card implements the card service's business rules: the
// account-existence check, PAN/CVV format validation against configured
// patterns, the uniqueness rules, and sensitive-field masking on reads.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bankingsystem/services/pkg/config"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	repo "github.com/bankingsystem/services/pkg/repository/card"
)

// AccountLookup asks the account service whether an account exists.
type AccountLookup interface {
	GetAccountByID(ctx context.Context, accountID int64) (*dto.AccountRead, error)
}

type Service struct {
	repo     repo.Repository
	accounts AccountLookup
	panRe    *regexp.Regexp
	cvvRe    *regexp.Regexp
	logger   *slog.Logger
}

// New compiles the configured PAN/CVV patterns once; a malformed pattern is a
// startup error, not a per-request one.
func New(repo repo.Repository, accounts AccountLookup, cfg config.CardFormat, logger *slog.Logger) (*Service, error) {
	panRe, err := regexp.Compile(cfg.PanFormat)
	if err != nil {
		return nil, fmt.Errorf("compile pan format %q: %w", cfg.PanFormat, err)
	}
	cvvRe, err := regexp.Compile(cfg.CvvFormat)
	if err != nil {
		return nil, fmt.Errorf("compile cvv format %q: %w", cfg.CvvFormat, err)
	}
	return &Service{repo: repo, accounts: accounts, panRe: panRe, cvvRe: cvvRe, logger: logger}, nil
}

// CreateCard runs the creation pipeline in a fixed order: account reference,
// then field formats, then the two uniqueness rules. The response always comes
// back masked; a fresh card's PAN is revealed only through an explicit fetch.
func (s *Service) CreateCard(ctx context.Context, create dto.CardCreate) (*dto.CardRead, error) {
	if err := s.validateAccountExists(ctx, create.AccountID); err != nil {
		return nil, err
	}
	if err := s.validateCardDetails(create); err != nil {
		return nil, err
	}
	if err := s.validateUniqueness(ctx, create); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	s.logger.Info("card created",
		"card_id", created.CardID, "account_id", created.AccountID, "type", created.Type)
	return s.present(created, false), nil
}

func (s *Service) GetCard(ctx context.Context, cardID int64, showSensitiveData bool) (*dto.CardRead, error) {
	card, err := s.repo.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.present(card, showSensitiveData), nil
}

func (s *Service) ListCards(ctx context.Context, filter dto.CardListFilter, page, size int, showSensitiveData bool) (*dto.Page[dto.CardRead], error) {
	result, err := s.repo.List(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}
	return dto.MapPage(result, func(c dto.CardRead) dto.CardRead {
		return *s.present(&c, showSensitiveData)
	}), nil
}

// UpdateCard applies a partial update; only the alias is mutable.
func (s *Service) UpdateCard(ctx context.Context, cardID int64, update dto.CardUpdate) (*dto.CardRead, error) {
	if _, err := s.repo.Get(ctx, cardID); err != nil {
		return nil, err
	}
	if update.CardAlias != nil && strings.TrimSpace(*update.CardAlias) == "" {
		update.CardAlias = nil
	}
	updated, err := s.repo.Update(ctx, cardID, update)
	if err != nil {
		return nil, err
	}
	return s.present(updated, false), nil
}

// DeleteCard removes a card unconditionally; nothing references cards.
func (s *Service) DeleteCard(ctx context.Context, cardID int64) error {
	if _, err := s.repo.Get(ctx, cardID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, cardID); err != nil {
		return err
	}
	s.logger.Info("card deleted", "card_id", cardID)
	return nil
}

// validateAccountExists treats every lookup failure as "account not found".
// Absence and unavailability are deliberately conflated; see DESIGN.md.
func (s *Service) validateAccountExists(ctx context.Context, accountID int64) error {
	if accountID == 0 {
		return domain.E(domain.MissingReference, "account.detail.missing")
	}
	if _, err := s.accounts.GetAccountByID(ctx, accountID); err != nil {
		s.logger.Warn("account lookup failed", "account_id", accountID, "error", err)
		return domain.E(domain.ReferenceNotFound, "account.not.found", accountID)
	}
	return nil
}

func (s *Service) validateCardDetails(create dto.CardCreate) error {
	if create.Cvv == "" {
		return domain.E(domain.MissingField, "cvv.mandatory")
	}
	if !s.cvvRe.MatchString(create.Cvv) {
		return domain.E(domain.InvalidFormat, "invalid.card.cvvformat")
	}
	if !create.Type.Valid() {
		return domain.E(domain.InvalidFormat, "invalid.card.type", string(create.Type))
	}
	if create.Pan == "" {
		return domain.E(domain.MissingField, "pan.mandatory")
	}
	if !s.panRe.MatchString(create.Pan) {
		return domain.E(domain.InvalidFormat, "invalid.card.panformat")
	}
	return nil
}

func (s *Service) validateUniqueness(ctx context.Context, create dto.CardCreate) error {
	exists, err := s.repo.ExistsByAccountAndType(ctx, create.AccountID, create.Type)
	if err != nil {
		return err
	}
	if exists {
		return domain.E(domain.DuplicateRelation, "account.type.exist", create.AccountID)
	}
	exists, err = s.repo.ExistsByPan(ctx, create.Pan)
	if err != nil {
		return err
	}
	if exists {
		return domain.E(domain.DuplicateKey, "card.pan.exist")
	}
	return nil
}

// present applies the read-boundary masking transform. Stored values are never
// modified.
func (s *Service) present(card *dto.CardRead, showSensitiveData bool) *dto.CardRead {
	out := *card
	if !showSensitiveData {
		out.Pan = MaskPan(card.Pan)
		out.Cvv = MaskCvv(card.Cvv)
	}
	return &out
}
