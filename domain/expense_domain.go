package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	SplitTypeEqual        = "equal"
	SplitTypeProportional = "proportional"
)

var (
	MessageSuccessCreateExpense = "expense created successfully"
	MessageSuccessGetExpenses   = "expenses retrieved successfully"
	MessageSuccessGetExpense    = "expense retrieved successfully"
	MessageSuccessUpdateExpense = "expense updated successfully"
	MessageSuccessDeleteExpense = "expense deleted successfully"
	MessageSuccessUploadReceipt = "receipt uploaded successfully"

	MessageFailedCreateExpense = "failed to create expense"
	MessageFailedGetExpenses   = "failed to retrieve expenses"
	MessageFailedGetExpense    = "failed to retrieve expense"
	MessageFailedUpdateExpense = "failed to update expense"
	MessageFailedDeleteExpense = "failed to delete expense"
	MessageFailedUploadReceipt = "failed to upload receipt"

	ErrExpenseNotFound        = errors.New("expense not found")
	ErrSplitAmountNotPositive = errors.New("each members_split amount must be a positive number")
	ErrReceiptRequired        = errors.New("receipt_image is required")
	ErrInvalidImageFormat     = errors.New("invalid image format")
)

type (
	// CreateExpenseRequest is the write shape of an expense: relations by id,
	// category by name, and the per-member split used to derive settlements.
	CreateExpenseRequest struct {
		GroupID      string                     `json:"group_id" validate:"required,uuid"`
		PayerID      string                     `json:"payer_id" validate:"required,uuid"`
		Amount       decimal.Decimal            `json:"amount" validate:"required,gt=0"`
		Category     string                     `json:"category" validate:"required"`
		SplitType    string                     `json:"split_type" validate:"required,oneof=equal proportional"`
		MembersSplit map[string]decimal.Decimal `json:"members_split" validate:"omitempty,dive,gt=0"`
	}

	UpdateExpenseRequest struct {
		Amount       *decimal.Decimal           `json:"amount" validate:"omitempty,gt=0"`
		Category     string                     `json:"category" validate:"omitempty"`
		SplitType    string                     `json:"split_type" validate:"omitempty,oneof=equal proportional"`
		MembersSplit map[string]decimal.Decimal `json:"members_split" validate:"omitempty,dive,gt=0"`
	}

	// ExpenseView is the read shape of an expense with nested group and payer.
	ExpenseView struct {
		ID           string          `json:"id"`
		Amount       decimal.Decimal `json:"amount"`
		Category     string          `json:"category"`
		SplitType    string          `json:"split_type"`
		Date         string          `json:"date"`
		ReceiptImage string          `json:"receipt_image,omitempty"`
		Group        *GroupView      `json:"group,omitempty"`
		Payer        *StudentView    `json:"payer,omitempty"`
	}

	CreateExpenseResponse struct {
		ExpenseView
		Settlements    []SettlementView `json:"settlements"`
		SkippedMembers []string         `json:"skipped_members"`
	}
)
