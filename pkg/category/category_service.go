package category

import (
	"context"
	"errors"
	"strings"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.CategoryView, error)
		GetCategoryByID(ctx context.Context, id string) (*domain.CategoryView, error)
		GetCategories(ctx context.Context, params domain.ListParams) ([]*domain.CategoryView, int64, error)
		UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.CategoryView, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.CategoryView, error) {
	category := &entities.Category{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return domain.NewCategoryView(category), nil
}

func (s *categoryService) find(ctx context.Context, id string) (*entities.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*domain.CategoryView, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewCategoryView(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context, params domain.ListParams) ([]*domain.CategoryView, int64, error) {
	categories, count, err := s.categoryRepository.GetCategories(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.CategoryView, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.NewCategoryView(c))
	}
	return result, count, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.CategoryView, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(req.Name)
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return domain.NewCategoryView(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrCategoryNotFound
	}
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return nil
}
