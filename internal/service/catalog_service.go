package service

import (
	"context"

	"github.com/SyaefulAxl/meliyah-backend/internal/dto"
	"github.com/SyaefulAxl/meliyah-backend/internal/repository"
)

// CatalogService exposes the pre-seeded reference data: categories and types.
type CatalogService interface {
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	Types(ctx context.Context, categoryID *int64) ([]dto.TypeResponse, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	types      repository.TypeRepository
}

func NewCatalogService(categories repository.CategoryRepository, types repository.TypeRepository) CatalogService {
	return &catalogService{categories: categories, types: types}
}

func (s *catalogService) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, dto.CategoryResponse{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
		})
	}
	return result, nil
}

func (s *catalogService) Types(ctx context.Context, categoryID *int64) ([]dto.TypeResponse, error) {
	list, err := s.types.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TypeResponse, 0, len(list))
	for _, t := range list {
		result = append(result, dto.TypeResponse{
			TypeID:     t.TypeID,
			TypeName:   t.TypeName,
			CategoryID: t.CategoryID,
		})
	}
	return result, nil
}
