package domain

import (
	"pocketsense-backend/entities"
)

func NewStudentView(s *entities.Student) *StudentView {
	if s == nil {
		return nil
	}
	return &StudentView{
		ID:                    s.ID.String(),
		Username:              s.Username,
		Email:                 s.Email,
		College:               s.College,
		Semester:              s.Semester,
		DefaultPaymentMethods: s.DefaultPaymentMethods,
	}
}

func NewGroupView(g *entities.Group) *GroupView {
	if g == nil {
		return nil
	}
	members := make([]StudentView, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, *NewStudentView(m))
	}
	return &GroupView{
		ID:        g.ID.String(),
		Name:      g.Name,
		GroupType: g.GroupType,
		Members:   members,
	}
}

func NewCategoryView(c *entities.Category) *CategoryView {
	if c == nil {
		return nil
	}
	return &CategoryView{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}

func NewExpenseView(e *entities.Expense) *ExpenseView {
	if e == nil {
		return nil
	}
	view := &ExpenseView{
		ID:           e.ID.String(),
		Amount:       e.Amount,
		SplitType:    e.SplitType,
		Date:         e.Date.Format(DateLayout),
		ReceiptImage: e.ReceiptImage,
		Group:        NewGroupView(e.Group),
		Payer:        NewStudentView(e.Payer),
	}
	if e.Category != nil {
		view.Category = e.Category.Name
	}
	return view
}

func NewSettlementView(s *entities.Settlement) *SettlementView {
	if s == nil {
		return nil
	}
	view := &SettlementView{
		ID:                   s.ID.String(),
		Group:                NewGroupView(s.Group),
		Expense:              NewExpenseView(s.Expense),
		Payer:                NewStudentView(s.Payer),
		Receiver:             NewStudentView(s.Receiver),
		Amount:               s.Amount,
		PaymentStatus:        s.PaymentStatus,
		PaymentStatusDisplay: PaymentStatusDisplay(s.PaymentStatus),
		SettlementMethod:     s.SettlementMethod,
	}
	if s.DueDate != nil {
		due := s.DueDate.Format(DateLayout)
		view.DueDate = &due
	}
	return view
}

func PaymentStatusDisplay(status string) string {
	if status == PaymentStatusSettled {
		return "Settled"
	}
	return "Pending"
}
