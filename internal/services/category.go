package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type categoryService struct {
	uow            domain.UnitOfWork
	categoryRepo   domain.CategoryRepository
	contextTimeout time.Duration
}

// NewCategoryService creates the category service.
func NewCategoryService(uow domain.UnitOfWork, categoryRepo domain.CategoryRepository, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		uow:            uow,
		categoryRepo:   categoryRepo,
		contextTimeout: timeout,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if category.Name == "" {
			return domain.NewValidation("name", "name is required")
		}
		if _, err := tx.Categories().GetByName(ctx, category.Name); err == nil {
			return domain.NewConflict("category %q already exists", category.Name)
		} else if !domain.IsNotFound(err) {
			return fmt.Errorf("get category by name: %w", err)
		}

		now := time.Now()
		category.CreatedAt = now
		category.UpdatedAt = now
		if err := tx.Categories().Create(ctx, category); err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Categories().GetByID(ctx, category.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get category: %w", err)
		}
		if existing.Name != category.Name {
			other, err := tx.Categories().GetByName(ctx, category.Name)
			if err == nil && other.ID != category.ID {
				return domain.NewConflict("category %q already exists", category.Name)
			}
			if err != nil && !domain.IsNotFound(err) {
				return fmt.Errorf("get category by name: %w", err)
			}
		}

		existing.Name = category.Name
		existing.Description = category.Description
		existing.UpdatedAt = time.Now()

		if err := tx.Categories().Update(ctx, existing); err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Categories().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get category: %w", err)
		}
		if err := tx.Categories().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
