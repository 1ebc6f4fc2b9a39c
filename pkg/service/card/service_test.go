package card_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/bankingsystem/services/pkg/config"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	cardsvc "github.com/bankingsystem/services/pkg/service/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, create dto.CardCreate) (*dto.CardRead, error) {
	args := m.Called(ctx, create)
	if v := args.Get(0); v != nil {
		return v.(*dto.CardRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*dto.CardRead, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.CardRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, update dto.CardUpdate) (*dto.CardRead, error) {
	args := m.Called(ctx, id, update)
	if v := args.Get(0); v != nil {
		return v.(*dto.CardRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) List(ctx context.Context, filter dto.CardListFilter, page, size int) (*dto.Page[dto.CardRead], error) {
	args := m.Called(ctx, filter, page, size)
	if v := args.Get(0); v != nil {
		return v.(*dto.Page[dto.CardRead]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ExistsByPan(ctx context.Context, pan string) (bool, error) {
	args := m.Called(ctx, pan)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ExistsByAccountAndType(ctx context.Context, accountID int64, cardType domain.CardType) (bool, error) {
	args := m.Called(ctx, accountID, cardType)
	return args.Bool(0), args.Error(1)
}

type mockAccountLookup struct {
	mock.Mock
}

func (m *mockAccountLookup) GetAccountByID(ctx context.Context, accountID int64) (*dto.AccountRead, error) {
	args := m.Called(ctx, accountID)
	if v := args.Get(0); v != nil {
		return v.(*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func newService(t *testing.T) (*cardsvc.Service, *mockRepository, *mockAccountLookup) {
	t.Helper()
	repo := &mockRepository{}
	accounts := &mockAccountLookup{}
	svc, err := cardsvc.New(repo, accounts, config.CardFormat{
		PanFormat: "^[0-9]{16}$",
		CvvFormat: "^[0-9]{3}$",
	}, slog.Default())
	require.NoError(t, err)
	return svc, repo, accounts
}

func validCreate() dto.CardCreate {
	return dto.CardCreate{
		AccountID: 4,
		Type:      domain.CardTypeVirtual,
		Pan:       "4646557784849383",
		Cvv:       "123",
		CardAlias: "shopping",
	}
}

func TestNew_BadPanPattern(t *testing.T) {
	_, err := cardsvc.New(&mockRepository{}, &mockAccountLookup{},
		config.CardFormat{PanFormat: "(", CvvFormat: "^[0-9]{3}$"}, slog.Default())
	require.Error(t, err)
}

func TestCreateCard_Success_ResponseMasked(t *testing.T) {
	svc, repo, accounts := newService(t)
	create := validCreate()
	accounts.On("GetAccountByID", mock.Anything, int64(4)).
		Return(&dto.AccountRead{AccountID: 4}, nil).Once()
	repo.On("ExistsByAccountAndType", mock.Anything, int64(4), domain.CardTypeVirtual).
		Return(false, nil).Once()
	repo.On("ExistsByPan", mock.Anything, create.Pan).Return(false, nil).Once()
	repo.On("Create", mock.Anything, create).Return(&dto.CardRead{
		CardID: 1, AccountID: 4, Type: domain.CardTypeVirtual,
		Pan: create.Pan, Cvv: create.Cvv, CardAlias: create.CardAlias,
	}, nil).Once()

	got, err := svc.CreateCard(context.Background(), create)
	require.NoError(t, err)
	assert.Equal(t, "************9383", got.Pan)
	assert.Equal(t, "***", got.Cvv)
	repo.AssertExpectations(t)
}

func TestCreateCard_MissingAccountID(t *testing.T) {
	svc, repo, accounts := newService(t)
	create := validCreate()
	create.AccountID = 0

	_, err := svc.CreateCard(context.Background(), create)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.MissingReference, derr.Kind)
	assert.Equal(t, "account.detail.missing", derr.Key)
	accounts.AssertNotCalled(t, "GetAccountByID")
	repo.AssertNotCalled(t, "Create")
}

func TestCreateCard_AccountNotFound(t *testing.T) {
	svc, repo, accounts := newService(t)
	create := validCreate()
	accounts.On("GetAccountByID", mock.Anything, int64(4)).
		Return(nil, errors.New("status 404")).Once()

	_, err := svc.CreateCard(context.Background(), create)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ReferenceNotFound, derr.Kind)
	assert.Equal(t, "account.not.found", derr.Key)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateCard_FieldChecksRunInOrder(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*dto.CardCreate)
		wantKind domain.ErrorKind
		wantKey  string
	}{
		{"missing cvv", func(c *dto.CardCreate) { c.Cvv = "" }, domain.MissingField, "cvv.mandatory"},
		{"bad cvv format", func(c *dto.CardCreate) { c.Cvv = "12a" }, domain.InvalidFormat, "invalid.card.cvvformat"},
		{"bad type", func(c *dto.CardCreate) { c.Type = "DEBIT" }, domain.InvalidFormat, "invalid.card.type"},
		{"missing pan", func(c *dto.CardCreate) { c.Pan = "" }, domain.MissingField, "pan.mandatory"},
		{"bad pan format", func(c *dto.CardCreate) { c.Pan = "1234" }, domain.InvalidFormat, "invalid.card.panformat"},
		// cvv is checked before type and pan, so a request that is wrong
		// everywhere reports the cvv first
		{"cvv wins over pan", func(c *dto.CardCreate) { c.Cvv = ""; c.Pan = "" }, domain.MissingField, "cvv.mandatory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, accounts := newService(t)
			accounts.On("GetAccountByID", mock.Anything, int64(4)).
				Return(&dto.AccountRead{AccountID: 4}, nil).Once()
			create := validCreate()
			tt.mutate(&create)

			_, err := svc.CreateCard(context.Background(), create)
			var derr *domain.Error
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.wantKind, derr.Kind)
			assert.Equal(t, tt.wantKey, derr.Key)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateCard_DuplicateAccountTypeCheckedBeforePan(t *testing.T) {
	svc, repo, accounts := newService(t)
	create := validCreate()
	accounts.On("GetAccountByID", mock.Anything, int64(4)).
		Return(&dto.AccountRead{AccountID: 4}, nil).Once()
	repo.On("ExistsByAccountAndType", mock.Anything, int64(4), domain.CardTypeVirtual).
		Return(true, nil).Once()

	_, err := svc.CreateCard(context.Background(), create)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.DuplicateRelation, derr.Kind)
	assert.Equal(t, "account.type.exist", derr.Key)
	repo.AssertNotCalled(t, "ExistsByPan")
	repo.AssertNotCalled(t, "Create")
}

func TestCreateCard_DuplicatePan(t *testing.T) {
	svc, repo, accounts := newService(t)
	create := validCreate()
	accounts.On("GetAccountByID", mock.Anything, int64(4)).
		Return(&dto.AccountRead{AccountID: 4}, nil).Once()
	repo.On("ExistsByAccountAndType", mock.Anything, int64(4), domain.CardTypeVirtual).
		Return(false, nil).Once()
	repo.On("ExistsByPan", mock.Anything, create.Pan).Return(true, nil).Once()

	_, err := svc.CreateCard(context.Background(), create)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.DuplicateKey, derr.Kind)
	assert.Equal(t, "card.pan.exist", derr.Key)
	repo.AssertNotCalled(t, "Create")
}

func TestGetCard_MaskedByDefault(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("Get", mock.Anything, int64(1)).Return(&dto.CardRead{
		CardID: 1, Pan: "4646557784849383", Cvv: "123",
	}, nil).Once()

	got, err := svc.GetCard(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, "************9383", got.Pan)
	assert.Equal(t, "***", got.Cvv)
}

func TestGetCard_Revealed(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("Get", mock.Anything, int64(1)).Return(&dto.CardRead{
		CardID: 1, Pan: "4646557784849383", Cvv: "123",
	}, nil).Once()

	got, err := svc.GetCard(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Equal(t, "4646557784849383", got.Pan)
	assert.Equal(t, "123", got.Cvv)
}

func TestListCards_EveryItemMasked(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("List", mock.Anything, dto.CardListFilter{}, 0, 10).
		Return(&dto.Page[dto.CardRead]{
			Items: []dto.CardRead{
				{CardID: 1, Pan: "4646557784849383", Cvv: "123"},
				{CardID: 2, Pan: "5100000000005460", Cvv: "987"},
			},
			TotalElements: 2, TotalPages: 1, Size: 10,
		}, nil).Once()

	got, err := svc.ListCards(context.Background(), dto.CardListFilter{}, 0, 10, false)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	for _, item := range got.Items {
		assert.True(t, strings.HasPrefix(item.Pan, "************"))
		assert.Equal(t, "***", item.Cvv)
	}
	assert.Equal(t, int64(2), got.TotalElements)
}

func TestUpdateCard_AliasOnly(t *testing.T) {
	svc, repo, _ := newService(t)
	alias := "groceries"
	repo.On("Get", mock.Anything, int64(2)).Return(&dto.CardRead{CardID: 2}, nil).Once()
	repo.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(u dto.CardUpdate) bool {
		return u.CardAlias != nil && *u.CardAlias == "groceries"
	})).Return(&dto.CardRead{CardID: 2, CardAlias: alias, Pan: "4646557784849383", Cvv: "123"}, nil).Once()

	got, err := svc.UpdateCard(context.Background(), 2, dto.CardUpdate{CardAlias: &alias})
	require.NoError(t, err)
	assert.Equal(t, "groceries", got.CardAlias)
	assert.Equal(t, "************9383", got.Pan)
}

func TestUpdateCard_BlankAliasLeftUnchanged(t *testing.T) {
	svc, repo, _ := newService(t)
	blank := "  "
	repo.On("Get", mock.Anything, int64(2)).Return(&dto.CardRead{CardID: 2}, nil).Once()
	repo.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(u dto.CardUpdate) bool {
		return u.CardAlias == nil
	})).Return(&dto.CardRead{CardID: 2, CardAlias: "old"}, nil).Once()

	got, err := svc.UpdateCard(context.Background(), 2, dto.CardUpdate{CardAlias: &blank})
	require.NoError(t, err)
	assert.Equal(t, "old", got.CardAlias)
}

func TestDeleteCard_Unconditional(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("Get", mock.Anything, int64(3)).Return(&dto.CardRead{CardID: 3}, nil).Once()
	repo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

	require.NoError(t, svc.DeleteCard(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestDeleteCard_NotFound(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("Get", mock.Anything, int64(3)).
		Return(nil, domain.E(domain.NotFound, "card.not.found", int64(3))).Once()

	err := svc.DeleteCard(context.Background(), 3)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.NotFound, kind)
	repo.AssertNotCalled(t, "Delete")
}
