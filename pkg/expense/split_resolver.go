package expense

import (
	"sort"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResolveSplit turns a member-id to amount mapping into pending settlements
// owed to the expense payer. Keys that are not a known student, or that name
// the payer, are returned in skipped instead. Keys are visited in sorted order.
func ResolveSplit(
	expense *entities.Expense,
	membersSplit map[string]decimal.Decimal,
	students map[uuid.UUID]*entities.Student,
) (settlements []*entities.Settlement, skipped []string) {
	keys := make([]string, 0, len(membersSplit))
	for k := range membersSplit {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	settlements = make([]*entities.Settlement, 0, len(keys))
	skipped = make([]string, 0)
	for _, key := range keys {
		memberID, err := uuid.Parse(key)
		if err != nil {
			skipped = append(skipped, key)
			continue
		}
		receiver, ok := students[memberID]
		if !ok || memberID == expense.PayerID {
			skipped = append(skipped, key)
			continue
		}

		expenseID := expense.ID
		groupID := expense.GroupID
		settlements = append(settlements, &entities.Settlement{
			ID:               uuid.New(),
			ExpenseID:        &expenseID,
			GroupID:          &groupID,
			PayerID:          expense.PayerID,
			ReceiverID:       memberID,
			Amount:           membersSplit[key],
			PaymentStatus:    domain.PaymentStatusPending,
			SettlementMethod: domain.SettlementMethodUPI,
			Payer:            expense.Payer,
			Receiver:         receiver,
			Group:            expense.Group,
		})
	}
	return settlements, skipped
}

// splitMemberIDs returns the parseable member ids of a split mapping.
func splitMemberIDs(membersSplit map[string]decimal.Decimal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(membersSplit))
	for k := range membersSplit {
		if id, err := uuid.Parse(k); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
