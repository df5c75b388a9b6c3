package settlement

import (
	"context"
	"errors"
	"strings"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"
	"pocketsense-backend/pkg/notification"
	"pocketsense-backend/pkg/student"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SettlementService interface {
		CreateSettlement(ctx context.Context, req domain.CreateSettlementRequest) (*domain.SettlementView, error)
		GetSettlementByID(ctx context.Context, id string) (*domain.SettlementView, error)
		GetSettlements(ctx context.Context, filter domain.SettlementFilter, params domain.ListParams) ([]*domain.SettlementView, int64, error)
		UpdateSettlement(ctx context.Context, id string, req domain.UpdateSettlementRequest) (*domain.SettlementView, error)
		DeleteSettlement(ctx context.Context, id string) error
		SendReminder(ctx context.Context, id string) error
	}

	settlementService struct {
		settlementRepository SettlementRepository
		studentRepository    student.StudentRepository
		dispatcher           notification.ReminderDispatcher
	}
)

func NewSettlementService(
	settlementRepository SettlementRepository,
	studentRepository student.StudentRepository,
	dispatcher notification.ReminderDispatcher,
) SettlementService {
	return &settlementService{
		settlementRepository: settlementRepository,
		studentRepository:    studentRepository,
		dispatcher:           dispatcher,
	}
}

// NormalizeStatusFilter maps the accepted status spellings onto a stored
// payment status. "true" and "false" are the boolean forms of settled and
// pending.
func NormalizeStatusFilter(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "":
		return "", nil
	case domain.PaymentStatusPending, "false":
		return domain.PaymentStatusPending, nil
	case domain.PaymentStatusSettled, "true":
		return domain.PaymentStatusSettled, nil
	default:
		return "", domain.ErrInvalidStatusFilter
	}
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	due, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &due, nil
}

func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return &id, nil
}

func (s *settlementService) find(ctx context.Context, id string) (*entities.Settlement, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSettlementNotFound
	}
	settlement, err := s.settlementRepository.GetSettlementByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettlementNotFound
		}
		return nil, err
	}
	return settlement, nil
}

func (s *settlementService) CreateSettlement(ctx context.Context, req domain.CreateSettlementRequest) (*domain.SettlementView, error) {
	if req.PayerID == req.ReceiverID {
		return nil, domain.ErrPayerIsReceiver
	}
	if err := domain.CheckAmount(req.Amount); err != nil {
		return nil, err
	}

	payer, err := s.studentRepository.GetStudentByID(ctx, req.PayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	receiver, err := s.studentRepository.GetStudentByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	expenseID, err := parseOptionalUUID(req.ExpenseID)
	if err != nil {
		return nil, err
	}
	groupID, err := parseOptionalUUID(req.GroupID)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	status := req.PaymentStatus
	if status == "" {
		status = domain.PaymentStatusPending
	}

	settlement := &entities.Settlement{
		ID:               uuid.New(),
		ExpenseID:        expenseID,
		GroupID:          groupID,
		PayerID:          payer.ID,
		ReceiverID:       receiver.ID,
		Amount:           req.Amount,
		PaymentStatus:    status,
		SettlementMethod: req.SettlementMethod,
		DueDate:          dueDate,
	}
	if err := s.settlementRepository.CreateSettlement(ctx, settlement); err != nil {
		if utils.IsForeignKeyViolation(err) {
			return nil, domain.ErrSettlementReference
		}
		return nil, err
	}

	return s.GetSettlementByID(ctx, settlement.ID.String())
}

func (s *settlementService) GetSettlementByID(ctx context.Context, id string) (*domain.SettlementView, error) {
	settlement, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewSettlementView(settlement), nil
}

func (s *settlementService) GetSettlements(ctx context.Context, filter domain.SettlementFilter, params domain.ListParams) ([]*domain.SettlementView, int64, error) {
	status, err := NormalizeStatusFilter(filter.Status)
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status

	for _, id := range []string{filter.GroupID, filter.PayerID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return nil, 0, domain.ErrParseUUID
		}
	}

	settlements, count, err := s.settlementRepository.GetSettlements(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.SettlementView, 0, len(settlements))
	for _, st := range settlements {
		result = append(result, domain.NewSettlementView(st))
	}
	return result, count, nil
}

func (s *settlementService) UpdateSettlement(ctx context.Context, id string, req domain.UpdateSettlementRequest) (*domain.SettlementView, error) {
	settlement, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := domain.CheckAmount(*req.Amount); err != nil {
			return nil, err
		}
		settlement.Amount = *req.Amount
	}
	if req.PaymentStatus != "" {
		settlement.PaymentStatus = req.PaymentStatus
	}
	if req.SettlementMethod != "" {
		settlement.SettlementMethod = req.SettlementMethod
	}
	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		settlement.DueDate = dueDate
	}

	if err := s.settlementRepository.UpdateSettlement(ctx, settlement); err != nil {
		return nil, err
	}
	return domain.NewSettlementView(settlement), nil
}

func (s *settlementService) DeleteSettlement(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrSettlementNotFound
	}
	if err := s.settlementRepository.DeleteSettlement(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSettlementNotFound
		}
		return err
	}
	return nil
}

func (s *settlementService) SendReminder(ctx context.Context, id string) error {
	settlement, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.dispatcher.SendReminder(ctx, settlement)
}
