package expense

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/cache"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/internal/utils/storage"
	"pocketsense-backend/pkg/category"
	"pocketsense-backend/pkg/group"
	"pocketsense-backend/pkg/student"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const receiptFolder = "receipts"

type (
	ExpenseService interface {
		CreateExpense(ctx context.Context, req domain.CreateExpenseRequest) (*domain.CreateExpenseResponse, error)
		GetExpenseByID(ctx context.Context, id string) (*domain.ExpenseView, error)
		GetExpenses(ctx context.Context, params domain.ListParams) ([]*domain.ExpenseView, int64, error)
		UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest) (*domain.ExpenseView, error)
		DeleteExpense(ctx context.Context, id string) error
		UploadReceipt(ctx context.Context, id string, file *multipart.FileHeader) (*domain.ExpenseView, error)
	}

	expenseService struct {
		expenseRepository  ExpenseRepository
		groupRepository    group.GroupRepository
		studentRepository  student.StudentRepository
		categoryRepository category.CategoryRepository
		cache              cache.Cache
		s3                 storage.AwsS3
	}
)

// NewExpenseService wires the expense use cases. cache and s3 may be nil.
func NewExpenseService(
	expenseRepository ExpenseRepository,
	groupRepository group.GroupRepository,
	studentRepository student.StudentRepository,
	categoryRepository category.CategoryRepository,
	cache cache.Cache,
	s3 storage.AwsS3,
) ExpenseService {
	return &expenseService{
		expenseRepository:  expenseRepository,
		groupRepository:    groupRepository,
		studentRepository:  studentRepository,
		categoryRepository: categoryRepository,
		cache:              cache,
		s3:                 s3,
	}
}

// checkSplit validates every members_split value the way a settlement
// amount is validated, since each value is copied into one.
func checkSplit(split map[string]decimal.Decimal) error {
	for _, v := range split {
		if !v.IsPositive() {
			return domain.ErrSplitAmountNotPositive
		}
		if err := domain.CheckAmount(v); err != nil {
			return err
		}
	}
	return nil
}

// invalidateAnalysis bumps the analysis cache version so cached monthly
// reports are recomputed after any expense write.
func (s *expenseService) invalidateAnalysis(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Increment(ctx, domain.AnalysisCacheVersionKey); err != nil {
		logger.GetLogger().Warnw("Failed to bump analysis cache version", "error", err)
	}
}

func (s *expenseService) lookupCategory(ctx context.Context, name string) (*entities.Category, error) {
	c, err := s.categoryRepository.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req domain.CreateExpenseRequest) (*domain.CreateExpenseResponse, error) {
	if err := domain.CheckAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := checkSplit(req.MembersSplit); err != nil {
		return nil, err
	}

	payer, err := s.studentRepository.GetStudentByID(ctx, req.PayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	g, err := s.groupRepository.GetGroupByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	c, err := s.lookupCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	membersSplit := req.MembersSplit
	if membersSplit == nil {
		membersSplit = map[string]decimal.Decimal{}
	}

	now := time.Now().UTC()
	expense := &entities.Expense{
		ID:           uuid.New(),
		Amount:       req.Amount,
		CategoryID:   c.ID,
		SplitType:    req.SplitType,
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		GroupID:      g.ID,
		PayerID:      payer.ID,
		MembersSplit: membersSplit,
		Category:     c,
		Group:        g,
		Payer:        payer,
	}

	members, err := s.studentRepository.GetStudentsByIDs(ctx, splitMemberIDs(membersSplit))
	if err != nil {
		return nil, err
	}
	lookup := make(map[uuid.UUID]*entities.Student, len(members))
	for _, m := range members {
		lookup[m.ID] = m
	}

	settlements, skipped := ResolveSplit(expense, membersSplit, lookup)
	if err := s.expenseRepository.CreateExpenseWithSettlements(ctx, expense, settlements); err != nil {
		return nil, err
	}
	s.invalidateAnalysis(ctx)

	log := logger.GetLogger()
	if len(skipped) > 0 {
		log.Warnw("Skipped unresolvable split members",
			"expense_id", expense.ID,
			"skipped", skipped)
	}
	log.Infow("Expense created",
		"expense_id", expense.ID,
		"group_id", g.ID,
		"settlements", len(settlements))

	res := &domain.CreateExpenseResponse{
		ExpenseView:    *domain.NewExpenseView(expense),
		Settlements:    make([]domain.SettlementView, 0, len(settlements)),
		SkippedMembers: skipped,
	}
	for _, st := range settlements {
		res.Settlements = append(res.Settlements, *domain.NewSettlementView(st))
	}
	return res, nil
}

func (s *expenseService) find(ctx context.Context, id string) (*entities.Expense, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrExpenseNotFound
	}
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string) (*domain.ExpenseView, error) {
	expense, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewExpenseView(expense), nil
}

func (s *expenseService) GetExpenses(ctx context.Context, params domain.ListParams) ([]*domain.ExpenseView, int64, error) {
	expenses, count, err := s.expenseRepository.GetExpenses(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, domain.NewExpenseView(e))
	}
	return result, count, nil
}

// UpdateExpense edits the stored expense only. Settlements derived at
// creation are left as they are, and the date never changes.
func (s *expenseService) UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest) (*domain.ExpenseView, error) {
	expense, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := domain.CheckAmount(*req.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *req.Amount
	}
	if req.Category != "" {
		c, err := s.lookupCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		expense.CategoryID = c.ID
		expense.Category = c
	}
	if req.SplitType != "" {
		expense.SplitType = req.SplitType
	}
	if req.MembersSplit != nil {
		if err := checkSplit(req.MembersSplit); err != nil {
			return nil, err
		}
		expense.MembersSplit = req.MembersSplit
	}

	if err := s.expenseRepository.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	s.invalidateAnalysis(ctx)
	return domain.NewExpenseView(expense), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	expense, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.expenseRepository.DeleteExpense(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}
	s.invalidateAnalysis(ctx)

	if expense.ReceiptImage != "" && s.s3 != nil {
		if key := s.s3.GetObjectKeyFromLink(expense.ReceiptImage); key != "" {
			if err := s.s3.DeleteFile(ctx, key); err != nil {
				logger.GetLogger().Warnw("Failed to delete receipt image", "expense_id", id, "error", err)
			}
		}
	}
	return nil
}

func (s *expenseService) UploadReceipt(ctx context.Context, id string, file *multipart.FileHeader) (*domain.ExpenseView, error) {
	if s.s3 == nil {
		return nil, storage.ErrStorageDisabled
	}
	if file == nil {
		return nil, domain.ErrReceiptRequired
	}

	expense, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.s3.UploadFile(ctx, expense.ID.String(), file, receiptFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return nil, domain.ErrInvalidImageFormat
		}
		return nil, err
	}
	url := s.s3.GetPublicLinkKey(key)

	if err := s.expenseRepository.UpdateReceiptImage(ctx, id, url); err != nil {
		return nil, err
	}
	expense.ReceiptImage = url
	return domain.NewExpenseView(expense), nil
}
