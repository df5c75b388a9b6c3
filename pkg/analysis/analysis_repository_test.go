package analysis

import (
	"context"
	"testing"
	"time"

	"pocketsense-backend/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetCategoryTotals_FiltersAndOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM \(SELECT categories.name AS category, SUM\(expenses.amount\) AS total_amount FROM "expenses" JOIN categories ON categories.id = expenses.category_id WHERE categories.name ILIKE \$1 ESCAPE '\\' AND \(expenses.date BETWEEN \$2 AND \$3\) GROUP BY`).
		WithArgs("%foo%", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT categories.name AS category, SUM\(expenses.amount\) AS total_amount FROM "expenses" JOIN categories .* ORDER BY total_amount DESC,category ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "total_amount"}).
			AddRow("Food", "420.00").
			AddRow("Seafood", "35.50"))

	results, count, err := repo.GetCategoryTotals(context.Background(), domain.AnalysisFilter{
		Category:  "foo",
		StartDate: &start,
		EndDate:   &end,
	}, domain.AnalysisPageSize, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, results, 2)
	assert.Equal(t, "Food", results[0].Category)
	assert.True(t, results[0].TotalAmount.Equal(decimal.RequireFromString("420")))
	assert.True(t, results[1].TotalAmount.Equal(decimal.RequireFromString("35.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryTotals_SingleBoundIgnoresDates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM \(SELECT categories.name AS category, SUM\(expenses.amount\) AS total_amount FROM "expenses" JOIN categories ON categories.id = expenses.category_id GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	results, count, err := repo.GetCategoryTotals(context.Background(), domain.AnalysisFilter{
		StartDate: &start,
	}, domain.AnalysisPageSize, 0)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryTotals_WildcardsMatchLiterally(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .* WHERE categories.name ILIKE \$1 ESCAPE '\\' GROUP BY`).
		WithArgs(`%a\_b\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	results, count, err := repo.GetCategoryTotals(context.Background(), domain.AnalysisFilter{Category: "a_b%"}, domain.AnalysisPageSize, 0)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}
