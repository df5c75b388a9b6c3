package handlers

import (
	"pocketsense-backend/domain"
	"pocketsense-backend/internal/api/presenters"
	"pocketsense-backend/pkg/student"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StudentHandler interface {
		CreateStudent(c *fiber.Ctx) error
		GetStudents(c *fiber.Ctx) error
		GetStudent(c *fiber.Ctx) error
		UpdateStudent(c *fiber.Ctx) error
		DeleteStudent(c *fiber.Ctx) error
	}

	studentHandler struct {
		studentService student.StudentService
		validator      *validator.Validate
	}
)

func NewStudentHandler(studentService student.StudentService, validator *validator.Validate) StudentHandler {
	return &studentHandler{
		studentService: studentService,
		validator:      validator,
	}
}

func (h *studentHandler) CreateStudent(c *fiber.Ctx) error {
	req := new(domain.CreateStudentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStudent, err)
	}

	res, err := h.studentService.CreateStudent(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateStudent, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStudent)
}

func (h *studentHandler) GetStudents(c *fiber.Ctx) error {
	params := parseListParams(c)

	students, count, err := h.studentService.GetStudents(c.Context(), params)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStudents, err)
	}
	return presenters.SuccessResponse(c, paginated(students, params, count), fiber.StatusOK, domain.MessageSuccessGetStudents)
}

func (h *studentHandler) GetStudent(c *fiber.Ctx) error {
	res, err := h.studentService.GetStudentByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStudent, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStudent)
}

func (h *studentHandler) UpdateStudent(c *fiber.Ctx) error {
	req := new(domain.UpdateStudentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStudent, err)
	}

	res, err := h.studentService.UpdateStudent(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateStudent, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateStudent)
}

func (h *studentHandler) DeleteStudent(c *fiber.Ctx) error {
	if err := h.studentService.DeleteStudent(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteStudent, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStudent)
}
