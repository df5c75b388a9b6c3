package domain

import (
	"errors"
)

const (
	PaymentTransactionPending = "pending"
	PaymentTransactionPaid    = "paid"
	PaymentTransactionFailed  = "failed"
)

var (
	MessageSuccessCreatePayment = "payment link created successfully"
	MessageSuccessNotification  = "notification processed successfully"

	MessageFailedCreatePayment = "failed to create payment link"
	MessageFailedNotification  = "failed to process payment notification"

	ErrPaymentTransactionNotFound = errors.New("payment transaction not found")
	ErrPaymentFailed              = errors.New("payment processing failed")
	ErrPaymentNotConfigured       = errors.New("payment gateway is not configured")
)

type (
	SettlementPaymentResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
