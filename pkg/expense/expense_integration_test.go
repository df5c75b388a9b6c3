//go:build integration

package expense

import (
	"context"
	"testing"
	"time"

	migration "pocketsense-backend/cmd/database/migrate"
	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/pkg/analysis"
	"pocketsense-backend/pkg/category"
	"pocketsense-backend/pkg/group"
	"pocketsense-backend/pkg/student"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pocketsense"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func TestCreateExpense_PersistsSettlementsAndTotals(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)

	asha := &entities.Student{ID: uuid.New(), Username: "asha", Email: "asha@example.com"}
	ravi := &entities.Student{ID: uuid.New(), Username: "ravi", Email: "ravi@example.com"}
	meera := &entities.Student{ID: uuid.New(), Username: "meera", Email: "meera@example.com"}
	for _, s := range []*entities.Student{asha, ravi, meera} {
		require.NoError(t, db.Create(s).Error)
	}
	trip := &entities.Group{ID: uuid.New(), Name: "Goa", GroupType: domain.GroupTypeTrip, Members: []*entities.Student{asha, ravi, meera}}
	require.NoError(t, db.Omit("Members.*").Create(trip).Error)

	studentRepository := student.NewStudentRepository(db)
	svc := NewExpenseService(
		NewExpenseRepository(db),
		group.NewGroupRepository(db),
		studentRepository,
		category.NewCategoryRepository(db),
		nil,
		nil,
	)

	res, err := svc.CreateExpense(ctx, domain.CreateExpenseRequest{
		GroupID:   trip.ID.String(),
		PayerID:   asha.ID.String(),
		Amount:    decimal.RequireFromString("90.00"),
		Category:  "Food",
		SplitType: domain.SplitTypeEqual,
		MembersSplit: map[string]decimal.Decimal{
			ravi.ID.String():  decimal.RequireFromString("30.00"),
			meera.ID.String(): decimal.RequireFromString("30.00"),
			uuid.NewString():  decimal.RequireFromString("30.00"),
		},
	})
	require.NoError(t, err)
	assert.Len(t, res.Settlements, 2)
	assert.Len(t, res.SkippedMembers, 1)

	var settlements []entities.Settlement
	require.NoError(t, db.Where("expense_id = ?", res.ID).Find(&settlements).Error)
	require.Len(t, settlements, 2)
	for _, st := range settlements {
		assert.Equal(t, asha.ID, st.PayerID)
		assert.Equal(t, domain.PaymentStatusPending, st.PaymentStatus)
		assert.Equal(t, domain.SettlementMethodUPI, st.SettlementMethod)
		assert.True(t, st.Amount.Equal(decimal.NewFromInt(30)))
	}

	_, err = svc.CreateExpense(ctx, domain.CreateExpenseRequest{
		GroupID:   trip.ID.String(),
		PayerID:   ravi.ID.String(),
		Amount:    decimal.RequireFromString("1200.00"),
		Category:  "Rent",
		SplitType: domain.SplitTypeEqual,
	})
	require.NoError(t, err)

	totals, count, err := analysis.NewAnalysisRepository(db).GetCategoryTotals(ctx, domain.AnalysisFilter{}, domain.AnalysisPageSize, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, totals, 2)
	assert.Equal(t, "Rent", totals[0].Category)
	assert.True(t, totals[0].TotalAmount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "Food", totals[1].Category)

	foodOnly, _, err := analysis.NewAnalysisRepository(db).GetCategoryTotals(ctx, domain.AnalysisFilter{Category: "fo"}, domain.AnalysisPageSize, 0)
	require.NoError(t, err)
	require.Len(t, foodOnly, 1)
	assert.True(t, foodOnly[0].TotalAmount.Equal(decimal.NewFromInt(90)))

	for _, literal := range []string{"f_od", "%", "_"} {
		none, count, err := analysis.NewAnalysisRepository(db).GetCategoryTotals(ctx, domain.AnalysisFilter{Category: literal}, domain.AnalysisPageSize, 0)
		require.NoError(t, err)
		assert.Zero(t, count, literal)
		assert.Empty(t, none, literal)
	}
}
