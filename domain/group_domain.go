package domain

import (
	"errors"
)

const (
	GroupTypeStudy   = "study"
	GroupTypeSports  = "sports"
	GroupTypeFriends = "friends"
	GroupTypeTrip    = "trip_groups"
)

var (
	MessageSuccessCreateGroup      = "group created successfully"
	MessageSuccessGetGroups        = "groups retrieved successfully"
	MessageSuccessGetGroup         = "group retrieved successfully"
	MessageSuccessUpdateGroup      = "group updated successfully"
	MessageSuccessDeleteGroup      = "group deleted successfully"
	MessageSuccessGetGroupExpenses = "group expenses retrieved successfully"

	MessageFailedCreateGroup      = "failed to create group"
	MessageFailedGetGroups        = "failed to retrieve groups"
	MessageFailedGetGroup         = "failed to retrieve group"
	MessageFailedUpdateGroup      = "failed to update group"
	MessageFailedDeleteGroup      = "failed to delete group"
	MessageFailedGetGroupExpenses = "failed to retrieve group expenses"

	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupMemberNotFound = errors.New("one or more members do not exist")
)

type (
	CreateGroupRequest struct {
		Name      string   `json:"name" validate:"required,max=255"`
		GroupType string   `json:"group_type" validate:"required,oneof=study sports friends trip_groups"`
		Members   []string `json:"members" validate:"dive,uuid"`
	}

	// UpdateGroupRequest leaves the member list untouched when Members is nil.
	UpdateGroupRequest struct {
		Name      string   `json:"name" validate:"omitempty,max=255"`
		GroupType string   `json:"group_type" validate:"omitempty,oneof=study sports friends trip_groups"`
		Members   []string `json:"members" validate:"omitempty,dive,uuid"`
	}

	GroupView struct {
		ID        string        `json:"id"`
		Name      string        `json:"name"`
		GroupType string        `json:"group_type"`
		Members   []StudentView `json:"members"`
	}
)
