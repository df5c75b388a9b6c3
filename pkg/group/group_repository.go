package group

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"

	"gorm.io/gorm"
)

var groupOrdering = map[string]string{
	"name":       "groups.name",
	"group_type": "groups.group_type",
}

type (
	GroupRepository interface {
		CreateGroup(ctx context.Context, group *entities.Group) error
		GetGroupByID(ctx context.Context, id string) (*entities.Group, error)
		GetGroups(ctx context.Context, params domain.ListParams) ([]*entities.Group, int64, error)
		UpdateGroup(ctx context.Context, group *entities.Group, members []*entities.Student) error
		DeleteGroup(ctx context.Context, id string) error
		GetGroupExpenses(ctx context.Context, groupID string) ([]*entities.Expense, error)
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroup inserts the group and its member links. Member rows are
// referenced, never upserted.
func (r *groupRepository) CreateGroup(ctx context.Context, group *entities.Group) error {
	return r.db.WithContext(ctx).Omit("Members.*").Create(group).Error
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroups(ctx context.Context, params domain.ListParams) ([]*entities.Group, int64, error) {
	var groups []*entities.Group
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Group{})
	query = utils.ApplySearch(query, params.Search, "groups.name", "groups.group_type")

	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyOrdering(query, params.Ordering, groupOrdering, "groups.name ASC")
	if err := query.
		Preload("Members").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	return groups, count, nil
}

// UpdateGroup saves the group columns and, when members is non-nil, replaces
// the member list in the same transaction.
func (r *groupRepository) UpdateGroup(ctx context.Context, group *entities.Group, members []*entities.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Save(group).Error; err != nil {
			return err
		}
		if members == nil {
			return nil
		}

		association := tx.Model(group).Association("Members")
		if len(members) == 0 {
			if err := association.Clear(); err != nil {
				return err
			}
		} else if err := association.Replace(members); err != nil {
			return err
		}
		group.Members = members
		return nil
	})
}

func (r *groupRepository) DeleteGroup(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Group{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groupRepository) GetGroupExpenses(ctx context.Context, groupID string) ([]*entities.Expense, error) {
	var expenses []*entities.Expense
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Payer").
		Preload("Group.Members").
		Where("group_id = ?", groupID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
