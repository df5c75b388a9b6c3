package group

import (
	"context"
	"errors"
	"strings"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/pkg/student"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroupService interface {
		CreateGroup(ctx context.Context, req domain.CreateGroupRequest) (*domain.GroupView, error)
		GetGroupByID(ctx context.Context, id string) (*domain.GroupView, error)
		GetGroups(ctx context.Context, params domain.ListParams) ([]*domain.GroupView, int64, error)
		UpdateGroup(ctx context.Context, id string, req domain.UpdateGroupRequest) (*domain.GroupView, error)
		DeleteGroup(ctx context.Context, id string) error
		GetGroupExpenses(ctx context.Context, id string) ([]*domain.ExpenseView, error)
	}

	groupService struct {
		groupRepository   GroupRepository
		studentRepository student.StudentRepository
	}
)

func NewGroupService(groupRepository GroupRepository, studentRepository student.StudentRepository) GroupService {
	return &groupService{
		groupRepository:   groupRepository,
		studentRepository: studentRepository,
	}
}

// resolveMembers loads every referenced student, failing if any id is unknown.
func (s *groupService) resolveMembers(ctx context.Context, ids []string) ([]*entities.Student, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		memberID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrGroupMemberNotFound
		}
		if _, ok := seen[memberID]; ok {
			continue
		}
		seen[memberID] = struct{}{}
		parsed = append(parsed, memberID)
	}

	students, err := s.studentRepository.GetStudentsByIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if len(students) != len(parsed) {
		return nil, domain.ErrGroupMemberNotFound
	}
	if students == nil {
		students = []*entities.Student{}
	}
	return students, nil
}

func (s *groupService) find(ctx context.Context, id string) (*entities.Group, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrGroupNotFound
	}
	group, err := s.groupRepository.GetGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *groupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest) (*domain.GroupView, error) {
	members, err := s.resolveMembers(ctx, req.Members)
	if err != nil {
		return nil, err
	}

	group := &entities.Group{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		GroupType: req.GroupType,
		Members:   members,
	}
	if err := s.groupRepository.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	logger.GetLogger().Infow("Group created", "group_id", group.ID, "members", len(members))
	return domain.NewGroupView(group), nil
}

func (s *groupService) GetGroupByID(ctx context.Context, id string) (*domain.GroupView, error) {
	group, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewGroupView(group), nil
}

func (s *groupService) GetGroups(ctx context.Context, params domain.ListParams) ([]*domain.GroupView, int64, error) {
	groups, count, err := s.groupRepository.GetGroups(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.GroupView, 0, len(groups))
	for _, g := range groups {
		result = append(result, domain.NewGroupView(g))
	}
	return result, count, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, id string, req domain.UpdateGroupRequest) (*domain.GroupView, error) {
	group, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		group.Name = strings.TrimSpace(req.Name)
	}
	if req.GroupType != "" {
		group.GroupType = req.GroupType
	}

	var members []*entities.Student
	if req.Members != nil {
		members, err = s.resolveMembers(ctx, req.Members)
		if err != nil {
			return nil, err
		}
	}

	if err := s.groupRepository.UpdateGroup(ctx, group, members); err != nil {
		return nil, err
	}
	return domain.NewGroupView(group), nil
}

func (s *groupService) DeleteGroup(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrGroupNotFound
	}
	if err := s.groupRepository.DeleteGroup(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}
	return nil
}

func (s *groupService) GetGroupExpenses(ctx context.Context, id string) ([]*domain.ExpenseView, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	expenses, err := s.groupRepository.GetGroupExpenses(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, domain.NewExpenseView(e))
	}
	return result, nil
}
