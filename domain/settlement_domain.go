package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusSettled = "settled"

	SettlementMethodCash = "cash"
	SettlementMethodUPI  = "upi"
	SettlementMethodCard = "card"
)

var (
	MessageSuccessCreateSettlement = "settlement created successfully"
	MessageSuccessGetSettlements   = "settlements retrieved successfully"
	MessageSuccessGetSettlement    = "settlement retrieved successfully"
	MessageSuccessUpdateSettlement = "settlement updated successfully"
	MessageSuccessDeleteSettlement = "settlement deleted successfully"
	MessageSuccessSendReminder     = "Reminder sent successfully."

	MessageFailedCreateSettlement = "failed to create settlement"
	MessageFailedGetSettlements   = "failed to retrieve settlements"
	MessageFailedGetSettlement    = "failed to retrieve settlement"
	MessageFailedUpdateSettlement = "failed to update settlement"
	MessageFailedDeleteSettlement = "failed to delete settlement"
	MessageFailedSendReminder     = "failed to send reminder"

	ErrSettlementNotFound       = errors.New("settlement not found")
	ErrSettlementAlreadySettled = errors.New("settlement is already settled")
	ErrPayerIsReceiver          = errors.New("payer and receiver cannot be the same person")
	ErrReminderDelivery         = errors.New("failed to send reminder")
	ErrInvalidStatusFilter      = errors.New("status must be one of pending, settled")
	ErrSettlementReference      = errors.New("referenced expense or group does not exist")
)

type (
	CreateSettlementRequest struct {
		ExpenseID        string          `json:"expense_id" validate:"omitempty,uuid"`
		GroupID          string          `json:"group_id" validate:"omitempty,uuid"`
		PayerID          string          `json:"payer_id" validate:"required,uuid"`
		ReceiverID       string          `json:"receiver_id" validate:"required,uuid"`
		Amount           decimal.Decimal `json:"amount" validate:"required,gt=0"`
		PaymentStatus    string          `json:"payment_status" validate:"omitempty,oneof=pending settled"`
		SettlementMethod string          `json:"settlement_method" validate:"required,oneof=cash upi card"`
		DueDate          string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	}

	UpdateSettlementRequest struct {
		Amount           *decimal.Decimal `json:"amount" validate:"omitempty,gt=0"`
		PaymentStatus    string           `json:"payment_status" validate:"omitempty,oneof=pending settled"`
		SettlementMethod string           `json:"settlement_method" validate:"omitempty,oneof=cash upi card"`
		DueDate          string           `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	}

	// SettlementFilter holds the exact-match list filters; empty fields are ignored.
	SettlementFilter struct {
		GroupID string
		PayerID string
		Status  string
	}

	SettlementView struct {
		ID                   string          `json:"id"`
		Group                *GroupView      `json:"group"`
		Expense              *ExpenseView    `json:"expense"`
		Payer                *StudentView    `json:"payer"`
		Receiver             *StudentView    `json:"receiver"`
		Amount               decimal.Decimal `json:"amount"`
		PaymentStatus        string          `json:"payment_status"`
		PaymentStatusDisplay string          `json:"payment_status_display"`
		SettlementMethod     string          `json:"settlement_method"`
		DueDate              *string         `json:"due_date"`
	}
)
