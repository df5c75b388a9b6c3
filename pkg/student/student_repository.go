package student

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var studentOrdering = map[string]string{
	"username": "students.username",
	"college":  "students.college",
	"semester": "students.semester",
}

type (
	StudentRepository interface {
		CreateStudent(ctx context.Context, student *entities.Student) error
		GetStudentByID(ctx context.Context, id string) (*entities.Student, error)
		GetStudentByUsername(ctx context.Context, username string) (*entities.Student, error)
		GetStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error)
		GetStudents(ctx context.Context, params domain.ListParams) ([]*entities.Student, int64, error)
		UpdateStudent(ctx context.Context, student *entities.Student) error
		DeleteStudent(ctx context.Context, id string) error
	}

	studentRepository struct {
		db *gorm.DB
	}
)

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *entities.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) GetStudentByID(ctx context.Context, id string) (*entities.Student, error) {
	var student entities.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetStudentByUsername(ctx context.Context, username string) (*entities.Student, error) {
	var student entities.Student
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	var students []*entities.Student
	if len(ids) == 0 {
		return students, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) GetStudents(ctx context.Context, params domain.ListParams) ([]*entities.Student, int64, error) {
	var students []*entities.Student
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Student{})
	query = utils.ApplySearch(query, params.Search, "students.username", "students.email", "students.college")

	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyOrdering(query, params.Ordering, studentOrdering, "students.username ASC")
	if err := query.
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, count, nil
}

func (r *studentRepository) UpdateStudent(ctx context.Context, student *entities.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Student{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
