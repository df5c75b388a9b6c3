package handlers

import (
	"pocketsense-backend/domain"
	"pocketsense-backend/internal/api/presenters"
	"pocketsense-backend/pkg/group"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		CreateGroup(c *fiber.Ctx) error
		GetGroups(c *fiber.Ctx) error
		GetGroup(c *fiber.Ctx) error
		UpdateGroup(c *fiber.Ctx) error
		DeleteGroup(c *fiber.Ctx) error
		GetGroupExpenses(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
		validator    *validator.Validate
	}
)

func NewGroupHandler(groupService group.GroupService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func (h *groupHandler) CreateGroup(c *fiber.Ctx) error {
	req := new(domain.CreateGroupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroup, err)
	}

	res, err := h.groupService.CreateGroup(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, referenceStatus(err), domain.MessageFailedCreateGroup, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateGroup)
}

func (h *groupHandler) GetGroups(c *fiber.Ctx) error {
	params := parseListParams(c)

	groups, count, err := h.groupService.GetGroups(c.Context(), params)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetGroups, err)
	}
	return presenters.SuccessResponse(c, paginated(groups, params, count), fiber.StatusOK, domain.MessageSuccessGetGroups)
}

func (h *groupHandler) GetGroup(c *fiber.Ctx) error {
	res, err := h.groupService.GetGroupByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetGroup, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroup)
}

func (h *groupHandler) UpdateGroup(c *fiber.Ctx) error {
	req := new(domain.UpdateGroupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroup, err)
	}

	res, err := h.groupService.UpdateGroup(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateGroup, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroup)
}

func (h *groupHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.groupService.DeleteGroup(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteGroup, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroup)
}

func (h *groupHandler) GetGroupExpenses(c *fiber.Ctx) error {
	res, err := h.groupService.GetGroupExpenses(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetGroupExpenses, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroupExpenses)
}
