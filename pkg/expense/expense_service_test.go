package expense

import (
	"context"
	"os"
	"testing"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/internal/utils/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop().Sugar())
	os.Exit(m.Run())
}

type expenseFixture struct {
	expenses   *mockExpenseRepository
	groups     *mockGroupRepository
	students   *mockStudentRepository
	categories *mockCategoryRepository
	cache      *mockCache
	service    ExpenseService
}

func newExpenseFixture() *expenseFixture {
	f := &expenseFixture{
		expenses:   new(mockExpenseRepository),
		groups:     new(mockGroupRepository),
		students:   new(mockStudentRepository),
		categories: new(mockCategoryRepository),
		cache:      new(mockCache),
	}
	f.service = NewExpenseService(f.expenses, f.groups, f.students, f.categories, f.cache, nil)
	return f
}

func TestCreateExpense_DerivesSettlementsInOneWrite(t *testing.T) {
	ctx := context.Background()
	f := newExpenseFixture()

	payer := &entities.Student{ID: uuid.New(), Username: "asha"}
	bob := &entities.Student{ID: uuid.New(), Username: "bob"}
	group := &entities.Group{ID: uuid.New(), Name: "Goa trip", GroupType: domain.GroupTypeTrip, Members: []*entities.Student{payer, bob}}
	food := &entities.Category{ID: uuid.New(), Name: "Food"}
	ghost := uuid.New().String()

	f.students.On("GetStudentByID", ctx, payer.ID.String()).Return(payer, nil)
	f.groups.On("GetGroupByID", ctx, group.ID.String()).Return(group, nil)
	f.categories.On("GetCategoryByName", ctx, "Food").Return(food, nil)
	f.students.On("GetStudentsByIDs", ctx, mock.Anything).Return([]*entities.Student{bob}, nil)

	var written []*entities.Settlement
	f.expenses.On("CreateExpenseWithSettlements", ctx, mock.AnythingOfType("*entities.Expense"), mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]*entities.Settlement)
		}).
		Return(nil).Once()
	f.cache.On("Increment", ctx, domain.AnalysisCacheVersionKey).Return(int64(1), nil).Once()

	res, err := f.service.CreateExpense(ctx, domain.CreateExpenseRequest{
		GroupID:   group.ID.String(),
		PayerID:   payer.ID.String(),
		Amount:    decimal.RequireFromString("200.00"),
		Category:  "Food",
		SplitType: domain.SplitTypeEqual,
		MembersSplit: map[string]decimal.Decimal{
			bob.ID.String(): decimal.RequireFromString("100.00"),
			ghost:           decimal.RequireFromString("100.00"),
		},
	})

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, bob.ID, written[0].ReceiverID)
	require.Len(t, res.Settlements, 1)
	assert.Equal(t, "Pending", res.Settlements[0].PaymentStatusDisplay)
	assert.Equal(t, []string{ghost}, res.SkippedMembers)
	assert.Equal(t, "Food", res.Category)
	f.expenses.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestCreateExpense_RejectsThirdDecimal(t *testing.T) {
	f := newExpenseFixture()

	_, err := f.service.CreateExpense(context.Background(), domain.CreateExpenseRequest{
		GroupID:   uuid.New().String(),
		PayerID:   uuid.New().String(),
		Amount:    decimal.RequireFromString("10.555"),
		Category:  "Food",
		SplitType: domain.SplitTypeEqual,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAmountPrecision)
	f.expenses.AssertNotCalled(t, "CreateExpenseWithSettlements", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateExpense_RejectsNonPositiveSplit(t *testing.T) {
	f := newExpenseFixture()

	_, err := f.service.CreateExpense(context.Background(), domain.CreateExpenseRequest{
		GroupID:      uuid.New().String(),
		PayerID:      uuid.New().String(),
		Amount:       decimal.NewFromInt(10),
		Category:     "Food",
		SplitType:    domain.SplitTypeEqual,
		MembersSplit: map[string]decimal.Decimal{uuid.New().String(): decimal.Zero},
	})

	assert.ErrorIs(t, err, domain.ErrSplitAmountNotPositive)
}

func TestCreateExpense_RejectsSplitThatCannotBeStored(t *testing.T) {
	tests := []struct {
		name  string
		split string
		want  error
	}{
		{"third decimal", "0.001", domain.ErrInvalidAmountPrecision},
		{"rounds away", "33.333", domain.ErrInvalidAmountPrecision},
		{"column overflow", "100000000", domain.ErrAmountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExpenseFixture()

			_, err := f.service.CreateExpense(context.Background(), domain.CreateExpenseRequest{
				GroupID:      uuid.New().String(),
				PayerID:      uuid.New().String(),
				Amount:       decimal.NewFromInt(100),
				Category:     "Food",
				SplitType:    domain.SplitTypeProportional,
				MembersSplit: map[string]decimal.Decimal{uuid.New().String(): decimal.RequireFromString(tt.split)},
			})

			assert.ErrorIs(t, err, tt.want)
			f.students.AssertNotCalled(t, "GetStudentByID", mock.Anything, mock.Anything)
			f.expenses.AssertNotCalled(t, "CreateExpenseWithSettlements", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateExpense_RejectsAmountOverflow(t *testing.T) {
	f := newExpenseFixture()

	_, err := f.service.CreateExpense(context.Background(), domain.CreateExpenseRequest{
		GroupID:   uuid.New().String(),
		PayerID:   uuid.New().String(),
		Amount:    decimal.RequireFromString("123456789.00"),
		Category:  "Food",
		SplitType: domain.SplitTypeEqual,
	})

	assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
}

func TestUpdateExpense_RejectsSplitPrecision(t *testing.T) {
	ctx := context.Background()
	f := newExpenseFixture()
	expense := &entities.Expense{ID: uuid.New(), Amount: decimal.NewFromInt(100)}
	f.expenses.On("GetExpenseByID", ctx, expense.ID.String()).Return(expense, nil)

	_, err := f.service.UpdateExpense(ctx, expense.ID.String(), domain.UpdateExpenseRequest{
		MembersSplit: map[string]decimal.Decimal{uuid.New().String(): decimal.RequireFromString("33.333")},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAmountPrecision)
	f.expenses.AssertNotCalled(t, "UpdateExpense", mock.Anything, mock.Anything)
}

func TestCreateExpense_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	f := newExpenseFixture()
	payer := &entities.Student{ID: uuid.New()}
	group := &entities.Group{ID: uuid.New()}

	f.students.On("GetStudentByID", ctx, payer.ID.String()).Return(payer, nil)
	f.groups.On("GetGroupByID", ctx, group.ID.String()).Return(group, nil)
	f.categories.On("GetCategoryByName", ctx, "Yachts").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.CreateExpense(ctx, domain.CreateExpenseRequest{
		GroupID:   group.ID.String(),
		PayerID:   payer.ID.String(),
		Amount:    decimal.NewFromInt(10),
		Category:  "Yachts",
		SplitType: domain.SplitTypeEqual,
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateExpense_UnknownPayer(t *testing.T) {
	ctx := context.Background()
	f := newExpenseFixture()
	payerID := uuid.New().String()

	f.students.On("GetStudentByID", ctx, payerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.CreateExpense(ctx, domain.CreateExpenseRequest{
		GroupID:   uuid.New().String(),
		PayerID:   payerID,
		Amount:    decimal.NewFromInt(10),
		Category:  "Food",
		SplitType: domain.SplitTypeEqual,
	})

	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestUpdateExpense_DoesNotRederiveSettlements(t *testing.T) {
	ctx := context.Background()
	f := newExpenseFixture()
	existing := &entities.Expense{
		ID:        uuid.New(),
		Amount:    decimal.NewFromInt(100),
		SplitType: domain.SplitTypeEqual,
		Category:  &entities.Category{Name: "Food"},
	}
	newAmount := decimal.RequireFromString("120.50")

	f.expenses.On("GetExpenseByID", ctx, existing.ID.String()).Return(existing, nil)
	f.expenses.On("UpdateExpense", ctx, existing).Return(nil)
	f.cache.On("Increment", ctx, domain.AnalysisCacheVersionKey).Return(int64(2), nil)

	res, err := f.service.UpdateExpense(ctx, existing.ID.String(), domain.UpdateExpenseRequest{
		Amount:       &newAmount,
		MembersSplit: map[string]decimal.Decimal{uuid.New().String(): decimal.NewFromInt(60)},
	})

	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(newAmount))
	f.expenses.AssertNotCalled(t, "CreateExpenseWithSettlements", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetExpense_InvalidID(t *testing.T) {
	f := newExpenseFixture()

	_, err := f.service.GetExpenseByID(context.Background(), "42")

	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestUploadReceipt_StorageDisabled(t *testing.T) {
	f := newExpenseFixture()

	_, err := f.service.UploadReceipt(context.Background(), uuid.New().String(), nil)

	assert.ErrorIs(t, err, storage.ErrStorageDisabled)
}
