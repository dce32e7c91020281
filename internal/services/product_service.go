package services

import (
	"context"
	"errors"

	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
)

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	p, err := s.repo.FindByProductID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetBySellerID(ctx context.Context, sellerID string) ([]models.Product, error) {
	return s.repo.FindBySellerID(ctx, sellerID)
}

func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.ProductID == "" {
		return nil, errors.New("productId is required to create a product")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

// Update is a whole-document replace keyed by productID.
func (s *ProductService) Update(ctx context.Context, productID string, p *models.Product) (*models.Product, error) {
	updated, err := s.repo.Replace(ctx, productID, p)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (s *ProductService) Delete(ctx context.Context, productID string) (bool, error) {
	return s.repo.Delete(ctx, productID)
}

func (s *ProductService) Exists(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	return n > 0, err
}
