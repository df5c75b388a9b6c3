package student

import (
	"context"
	"errors"
	"strings"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"
	"pocketsense-backend/internal/utils/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	StudentService interface {
		CreateStudent(ctx context.Context, req domain.CreateStudentRequest) (*domain.StudentView, error)
		GetStudentByID(ctx context.Context, id string) (*domain.StudentView, error)
		GetStudents(ctx context.Context, params domain.ListParams) ([]*domain.StudentView, int64, error)
		UpdateStudent(ctx context.Context, id string, req domain.UpdateStudentRequest) (*domain.StudentView, error)
		DeleteStudent(ctx context.Context, id string) error
	}

	studentService struct {
		studentRepository StudentRepository
	}
)

func NewStudentService(studentRepository StudentRepository) StudentService {
	return &studentService{
		studentRepository: studentRepository,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, req domain.CreateStudentRequest) (*domain.StudentView, error) {
	username := strings.TrimSpace(req.Username)
	if _, err := s.studentRepository.GetStudentByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	methods := req.DefaultPaymentMethods
	if methods == nil {
		methods = map[string]string{}
	}

	student := &entities.Student{
		ID:                    uuid.New(),
		Username:              username,
		Email:                 req.Email,
		Password:              string(hashed),
		College:               req.College,
		Semester:              req.Semester,
		DefaultPaymentMethods: methods,
	}

	if err := s.studentRepository.CreateStudent(ctx, student); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	logger.GetLogger().Infow("Student registered",
		"student_id", student.ID,
		"email", logger.MaskEmail(student.Email))

	return domain.NewStudentView(student), nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id string) (*domain.StudentView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrStudentNotFound
	}

	student, err := s.studentRepository.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return domain.NewStudentView(student), nil
}

func (s *studentService) GetStudents(ctx context.Context, params domain.ListParams) ([]*domain.StudentView, int64, error) {
	students, count, err := s.studentRepository.GetStudents(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.StudentView, 0, len(students))
	for _, student := range students {
		result = append(result, domain.NewStudentView(student))
	}
	return result, count, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, req domain.UpdateStudentRequest) (*domain.StudentView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrStudentNotFound
	}

	student, err := s.studentRepository.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	if req.Email != "" {
		student.Email = req.Email
	}
	if req.College != "" {
		student.College = req.College
	}
	if req.Semester > 0 {
		student.Semester = req.Semester
	}
	if req.DefaultPaymentMethods != nil {
		student.DefaultPaymentMethods = req.DefaultPaymentMethods
	}

	if err := s.studentRepository.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}
	return domain.NewStudentView(student), nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrStudentNotFound
	}

	if err := s.studentRepository.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStudentNotFound
		}
		return err
	}
	return nil
}
