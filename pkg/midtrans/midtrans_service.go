package midtrans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/pkg/settlement"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateSettlementPayment(ctx context.Context, settlementID string) (*domain.SettlementPaymentResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	midtransService struct {
		midtransRepository   MidtransRepository
		settlementRepository settlement.SettlementRepository
		gateway              PaymentGateway
	}
)

// NewMidtransService wires settlement payments. A nil gateway makes every
// call return domain.ErrPaymentNotConfigured.
func NewMidtransService(
	midtransRepository MidtransRepository,
	settlementRepository settlement.SettlementRepository,
	gateway PaymentGateway,
) MidtransService {
	return &midtransService{
		midtransRepository:   midtransRepository,
		settlementRepository: settlementRepository,
		gateway:              gateway,
	}
}

// grossAmount rounds up to whole currency units, which is what Snap accepts.
func grossAmount(s *entities.Settlement) int64 {
	return s.Amount.Ceil().IntPart()
}

func (s *midtransService) CreateSettlementPayment(ctx context.Context, settlementID string) (*domain.SettlementPaymentResponse, error) {
	if s.gateway == nil {
		return nil, domain.ErrPaymentNotConfigured
	}
	if _, err := uuid.Parse(settlementID); err != nil {
		return nil, domain.ErrSettlementNotFound
	}

	st, err := s.settlementRepository.GetSettlementByID(ctx, settlementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettlementNotFound
		}
		return nil, err
	}
	if st.PaymentStatus == domain.PaymentStatusSettled {
		return nil, domain.ErrSettlementAlreadySettled
	}

	amount := grossAmount(st)
	orderID := fmt.Sprintf("settlement-%s-%d", st.ID.String()[:8], time.Now().Unix())
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    st.ID.String(),
				Name:  "Settlement",
				Price: amount,
				Qty:   1,
			},
		},
	}
	if st.Receiver != nil {
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: st.Receiver.Username,
			Email: st.Receiver.Email,
		}
	}

	resp, err := s.gateway.CreateTransaction(req)
	if err != nil {
		logger.GetLogger().Errorw("Midtrans create transaction failed",
			"settlement_id", st.ID,
			"error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	tx := &entities.PaymentTransaction{
		ID:           uuid.New(),
		SettlementID: st.ID,
		OrderID:      orderID,
		Token:        resp.Token,
		RedirectURL:  resp.RedirectURL,
		GrossAmount:  st.Amount.Ceil(),
		Status:       domain.PaymentTransactionPending,
	}
	if err := s.midtransRepository.CreatePaymentTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.SettlementPaymentResponse{
		OrderID:     orderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// HandleNotification re-reads the order status from the core API instead of
// trusting the webhook body, then settles or fails the payment.
func (s *midtransService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	if s.gateway == nil {
		return domain.ErrPaymentNotConfigured
	}

	tx, err := s.midtransRepository.GetPaymentTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentTransactionNotFound
		}
		return err
	}

	status, err := s.gateway.CheckTransaction(req.OrderID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	log := logger.GetLogger()
	switch status.TransactionStatus {
	case "capture":
		if status.FraudStatus != "accept" {
			return nil
		}
		fallthrough
	case "settlement":
		if tx.Status == domain.PaymentTransactionPaid {
			return nil
		}
		if err := s.midtransRepository.MarkPaid(ctx, tx); err != nil {
			return err
		}
		log.Infow("Settlement paid", "order_id", tx.OrderID, "settlement_id", tx.SettlementID)
	case "deny", "cancel", "expire", "failure":
		if err := s.midtransRepository.MarkFailed(ctx, tx); err != nil {
			return err
		}
		log.Infow("Settlement payment failed", "order_id", tx.OrderID, "status", status.TransactionStatus)
	}
	return nil
}
