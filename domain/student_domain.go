package domain

import (
	"errors"
)

var (
	MessageSuccessCreateStudent = "student created successfully"
	MessageSuccessGetStudents   = "students retrieved successfully"
	MessageSuccessGetStudent    = "student retrieved successfully"
	MessageSuccessUpdateStudent = "student updated successfully"
	MessageSuccessDeleteStudent = "student deleted successfully"

	MessageFailedCreateStudent = "failed to create student"
	MessageFailedGetStudents   = "failed to retrieve students"
	MessageFailedGetStudent    = "failed to retrieve student"
	MessageFailedUpdateStudent = "failed to update student"
	MessageFailedDeleteStudent = "failed to delete student"

	ErrStudentNotFound = errors.New("student not found")
	ErrUsernameTaken   = errors.New("a student with that username already exists")
)

type (
	CreateStudentRequest struct {
		Username              string            `json:"username" validate:"required,min=3,max=150"`
		Email                 string            `json:"email" validate:"required,email"`
		Password              string            `json:"password" validate:"required,min=8"`
		College               string            `json:"college" validate:"required,max=255"`
		Semester              int               `json:"semester" validate:"required,min=1,max=12"`
		DefaultPaymentMethods map[string]string `json:"default_payment_methods" validate:"omitempty"`
	}

	UpdateStudentRequest struct {
		Email                 string            `json:"email" validate:"omitempty,email"`
		College               string            `json:"college" validate:"omitempty,max=255"`
		Semester              int               `json:"semester" validate:"omitempty,min=1,max=12"`
		DefaultPaymentMethods map[string]string `json:"default_payment_methods" validate:"omitempty"`
	}

	StudentView struct {
		ID                    string            `json:"id"`
		Username              string            `json:"username"`
		Email                 string            `json:"email"`
		College               string            `json:"college"`
		Semester              int               `json:"semester"`
		DefaultPaymentMethods map[string]string `json:"default_payment_methods"`
	}
)
