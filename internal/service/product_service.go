package service

import (
	"context"
	"time"

	"github.com/SyaefulAxl/meliyah-backend/internal/dto"
	"github.com/SyaefulAxl/meliyah-backend/internal/model"
	"github.com/SyaefulAxl/meliyah-backend/internal/repository"
)

// DateLayout is the wire format of expiry dates.
const DateLayout = "2006-01-02"

// ProductService defines business operations for products. Create and Update
// both resolve the owning product group from the SKU tuple before touching
// the product row.
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductRow, error)
	Get(ctx context.Context, id int64) ([]dto.ProductRow, error)
	Create(ctx context.Context, req dto.ProductRequest) error
	Update(ctx context.Context, id int64, req dto.ProductRequest) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	products repository.ProductRepository
	groups   repository.ProductGroupRepository
}

func NewProductService(products repository.ProductRepository, groups repository.ProductGroupRepository) ProductService {
	return &productService{products: products, groups: groups}
}

func mapRow(d model.ProductDetail) dto.ProductRow {
	return dto.ProductRow{
		ProductID:    d.ProductID,
		Name:         d.Name,
		Price:        d.Price,
		Unit:         d.Unit,
		Quantity:     d.Quantity,
		TypeID:       d.TypeID,
		CategoryID:   d.CategoryID,
		TypeName:     d.TypeName,
		CategoryName: d.CategoryName,
		ExpiryDate:   d.ExpiryDate.Format(DateLayout),
		GroupID:      d.GroupID,
	}
}

func (s *productService) List(ctx context.Context) ([]dto.ProductRow, error) {
	details, err := s.products.ListDetail(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ProductRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, mapRow(d))
	}
	return rows, nil
}

func (s *productService) Get(ctx context.Context, id int64) ([]dto.ProductRow, error) {
	details, err := s.products.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A missing id yields an empty array, not an error.
	rows := make([]dto.ProductRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, mapRow(d))
	}
	return rows, nil
}

// resolveGroup maps a SKU tuple to a group id: reuse the first matching group,
// or create one when the tuple is new. The create path is an atomic upsert, so
// concurrent callers racing on the same new tuple resolve to a single group.
// The request's group_id field is deliberately ignored.
func (s *productService) resolveGroup(ctx context.Context, req dto.ProductRequest) (int64, error) {
	key := model.GroupKey{
		Name:       req.Name,
		Price:      req.Price,
		Unit:       req.Unit,
		TypeID:     req.TypeID,
		CategoryID: req.CategoryID,
	}
	groupID, found, err := s.groups.FindByTuple(ctx, key)
	if err != nil {
		return 0, err
	}
	if found {
		return groupID, nil
	}
	return s.groups.Upsert(ctx, key)
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) error {
	expiry, err := time.Parse(DateLayout, req.ExpiryDate)
	if err != nil {
		return err
	}
	groupID, err := s.resolveGroup(ctx, req)
	if err != nil {
		return err
	}
	return s.products.Create(ctx, groupID, req.Quantity, expiry)
}

func (s *productService) Update(ctx context.Context, id int64, req dto.ProductRequest) error {
	expiry, err := time.Parse(DateLayout, req.ExpiryDate)
	if err != nil {
		return err
	}
	groupID, err := s.resolveGroup(ctx, req)
	if err != nil {
		return err
	}
	return s.products.Update(ctx, id, groupID, req.Quantity, expiry)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.products.DeleteWithGroupCleanup(ctx, id)
}
