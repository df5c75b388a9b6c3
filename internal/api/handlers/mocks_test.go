package handlers

import (
	"context"
	"mime/multipart"

	"pocketsense-backend/domain"

	"github.com/stretchr/testify/mock"
)

type mockGroupService struct {
	mock.Mock
}

func (m *mockGroupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest) (*domain.GroupView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupView), args.Error(1)
}

func (m *mockGroupService) GetGroupByID(ctx context.Context, id string) (*domain.GroupView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupView), args.Error(1)
}

func (m *mockGroupService) GetGroups(ctx context.Context, params domain.ListParams) ([]*domain.GroupView, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*domain.GroupView), args.Get(1).(int64), args.Error(2)
}

func (m *mockGroupService) UpdateGroup(ctx context.Context, id string, req domain.UpdateGroupRequest) (*domain.GroupView, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupView), args.Error(1)
}

func (m *mockGroupService) DeleteGroup(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGroupService) GetGroupExpenses(ctx context.Context, id string) ([]*domain.ExpenseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExpenseView), args.Error(1)
}

type mockSettlementService struct {
	mock.Mock
}

func (m *mockSettlementService) CreateSettlement(ctx context.Context, req domain.CreateSettlementRequest) (*domain.SettlementView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementView), args.Error(1)
}

func (m *mockSettlementService) GetSettlementByID(ctx context.Context, id string) (*domain.SettlementView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementView), args.Error(1)
}

func (m *mockSettlementService) GetSettlements(ctx context.Context, filter domain.SettlementFilter, params domain.ListParams) ([]*domain.SettlementView, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]*domain.SettlementView), args.Get(1).(int64), args.Error(2)
}

func (m *mockSettlementService) UpdateSettlement(ctx context.Context, id string, req domain.UpdateSettlementRequest) (*domain.SettlementView, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementView), args.Error(1)
}

func (m *mockSettlementService) DeleteSettlement(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSettlementService) SendReminder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, req domain.CreateExpenseRequest) (*domain.CreateExpenseResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateExpenseResponse), args.Error(1)
}

func (m *mockExpenseService) GetExpenseByID(ctx context.Context, id string) (*domain.ExpenseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseView), args.Error(1)
}

func (m *mockExpenseService) GetExpenses(ctx context.Context, params domain.ListParams) ([]*domain.ExpenseView, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*domain.ExpenseView), args.Get(1).(int64), args.Error(2)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest) (*domain.ExpenseView, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseView), args.Error(1)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExpenseService) UploadReceipt(ctx context.Context, id string, file *multipart.FileHeader) (*domain.ExpenseView, error) {
	args := m.Called(ctx, id, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseView), args.Error(1)
}
