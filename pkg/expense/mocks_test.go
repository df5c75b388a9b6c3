package expense

import (
	"context"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) CreateExpenseWithSettlements(ctx context.Context, expense *entities.Expense, settlements []*entities.Settlement) error {
	args := m.Called(ctx, expense, settlements)
	return args.Error(0)
}

func (m *mockExpenseRepository) GetExpenseByID(ctx context.Context, id string) (*entities.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Expense), args.Error(1)
}

func (m *mockExpenseRepository) GetExpenses(ctx context.Context, params domain.ListParams) ([]*entities.Expense, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*entities.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *mockExpenseRepository) UpdateExpense(ctx context.Context, expense *entities.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *mockExpenseRepository) UpdateReceiptImage(ctx context.Context, id string, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *mockExpenseRepository) DeleteExpense(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockGroupRepository struct {
	mock.Mock
}

func (m *mockGroupRepository) CreateGroup(ctx context.Context, group *entities.Group) error {
	return m.Called(ctx, group).Error(0)
}

func (m *mockGroupRepository) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Group), args.Error(1)
}

func (m *mockGroupRepository) GetGroups(ctx context.Context, params domain.ListParams) ([]*entities.Group, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*entities.Group), args.Get(1).(int64), args.Error(2)
}

func (m *mockGroupRepository) UpdateGroup(ctx context.Context, group *entities.Group, members []*entities.Student) error {
	return m.Called(ctx, group, members).Error(0)
}

func (m *mockGroupRepository) DeleteGroup(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGroupRepository) GetGroupExpenses(ctx context.Context, groupID string) ([]*entities.Expense, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]*entities.Expense), args.Error(1)
}

type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) CreateStudent(ctx context.Context, student *entities.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *mockStudentRepository) GetStudentByID(ctx context.Context, id string) (*entities.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Student), args.Error(1)
}

func (m *mockStudentRepository) GetStudentByUsername(ctx context.Context, username string) (*entities.Student, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Student), args.Error(1)
}

func (m *mockStudentRepository) GetStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*entities.Student), args.Error(1)
}

func (m *mockStudentRepository) GetStudents(ctx context.Context, params domain.ListParams) ([]*entities.Student, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*entities.Student), args.Get(1).(int64), args.Error(2)
}

func (m *mockStudentRepository) UpdateStudent(ctx context.Context, student *entities.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *mockStudentRepository) DeleteStudent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context, params domain.ListParams) ([]*entities.Category, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*entities.Category), args.Get(1).(int64), args.Error(2)
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *mockCache) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCache) GetInt(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}
