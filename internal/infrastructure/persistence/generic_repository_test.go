package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productRows(codes ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "code", "description", "status"})
	for _, code := range codes {
		rows.AddRow(uuid.New(), code, "Conta corrente", "active")
	}
	return rows
}

func TestGormRepository_FindAll(t *testing.T) {
	t.Run("applies equality condition", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.Filter{}.Where("status", "active")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE status = \$1`).
			WithArgs("active").
			WillReturnRows(productRows("PROD01", "PROD02"))

		products, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies comparison operators", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.Filter{}.WhereOp("code", shared.OpLike, "PROD%")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE code LIKE \$1`).
			WithArgs("PROD%").
			WillReturnRows(productRows("PROD01"))

		products, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects condition on unknown field without querying", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.Filter{}.Where("price", 10)

		products, err := repo.FindAll(context.Background(), filter)

		assert.Nil(t, products)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FILTER_FIELD", domainErr.Code)
	})

	t.Run("applies free text search over the configured columns", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.Filter{Search: "Conta"}

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE lower\(code\) LIKE \$1 OR lower\(description\) LIKE \$2`).
			WithArgs("%conta%", "%conta%").
			WillReturnRows(productRows("PROD01"))

		products, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("orders by a whitelisted column", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.Filter{OrderBy: "code", OrderDir: "desc"}

		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY code DESC`).
			WillReturnRows(productRows("PROD02", "PROD01"))

		products, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormRepository_ExecRaw(t *testing.T) {
	t.Run("binds arguments as parameters", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM products WHERE status = \$1`).
			WithArgs("active").
			WillReturnRows(productRows("PROD01"))

		products, err := repo.ExecRaw(context.Background(), "SELECT * FROM products WHERE status = ?", "active")

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "PROD01", products[0].Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormRepository_FindWithPagination(t *testing.T) {
	t.Run("returns page math alongside the slice", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT \* FROM "products" LIMIT .*`).
			WithArgs(10).
			WillReturnRows(productRows("PROD01", "PROD02"))
		mock.ExpectCommit()

		page, err := repo.FindWithPagination(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasPreviousPage())
		assert.False(t, page.HasNextPage())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByCode(t *testing.T) {
	t.Run("finds product by code", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("PROD01", 1).
			WillReturnRows(productRows("PROD01"))

		product, err := repo.FindByCode(context.Background(), "PROD01")

		assert.NoError(t, err)
		assert.Equal(t, "PROD01", product.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown code", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("MISSING", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByCode(context.Background(), "MISSING")

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
