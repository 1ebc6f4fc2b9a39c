package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bankingsystem/services/infra/repository/account"
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func accountColumns() []string {
	return []string{"acc_id", "acc_iban", "acc_bicswift", "acc_cust_id", "acc_created_at"}
}

func TestGet_NotFoundMapsToDomainError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE acc_id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	_, err := repo.Get(context.Background(), 42)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.NotFound, derr.Kind)
	assert.Equal(t, "account.not.found", derr.Key)
}

func TestCreate_ReturnsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"acc_id"}).AddRow(int64(3)))

	got, err := repo.Create(context.Background(), dto.AccountCreate{
		Iban: "GB33BUKB20201555555555", BicSwift: "BUKBGB22", CustomerID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.AccountID)
	assert.Equal(t, int64(5), got.CustomerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByIban(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE acc_iban = \$1`).
		WithArgs("GB33BUKB20201555555555").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.ExistsByIban(context.Background(), "GB33BUKB20201555555555")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE acc_iban = \$1`).
		WithArgs("FR7630006000011234567890189").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	exists, err = repo.ExistsByIban(context.Background(), "FR7630006000011234567890189")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestList_CustomerAndIbanFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)
	customerID := int64(3)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE acc_cust_id = \$1 AND acc_iban LIKE \$2`).
		WithArgs(int64(3), "%GB33%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE acc_cust_id = \$1 AND acc_iban LIKE \$2 ORDER BY acc_id LIMIT \$3`).
		WithArgs(int64(3), "%GB33%", 10).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(1), "GB33BUKB20201555555555", "BUKBGB22", int64(3), time.Now()))

	got, err := repo.List(context.Background(), dto.AccountListFilter{
		CustomerID: &customerID, Iban: "GB33",
	}, 0, 10)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(3), got.Items[0].CustomerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AppliesOnlyProvidedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)
	bic := "NWBKGB2L"

	mock.ExpectExec(`UPDATE "accounts" SET "acc_bicswift"=\$1 WHERE acc_id = \$2`).
		WithArgs("NWBKGB2L", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE acc_id = \$1`).
		WithArgs(int64(3), 1).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(3), "GB33BUKB20201555555555", "NWBKGB2L", int64(5), time.Now()))

	got, err := repo.Update(context.Background(), 3, dto.AccountUpdate{BicSwift: &bic})
	require.NoError(t, err)
	assert.Equal(t, "NWBKGB2L", got.BicSwift)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectExec(`DELETE FROM "accounts" WHERE acc_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
