package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	documentService
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetProduct resolves a product by ID regardless of its active flag, so
// historical order lines can still reference delisted products.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for product lookup")
	}

	for _, product := range doc.Products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, errors.Wrap(repository.ErrProductNotFound, "failed to get product")
}

// GetProductWithSeller joins strictly: a product whose seller record is
// missing is reported as not found.
func (srv *productService) GetProductWithSeller(ctx context.Context, id string) (*entity.ProductWithSeller, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for product lookup")
	}

	var product *entity.Product
	for _, p := range doc.Products {
		if p.ID == id {
			product = p

			break
		}
	}
	if product == nil {
		return nil, errors.Wrap(repository.ErrProductNotFound, "failed to get product with seller")
	}

	seller := findSeller(doc, product.SellerID)
	if seller == nil {
		return nil, errors.Wrap(repository.ErrProductNotFound, "failed to resolve seller for product")
	}

	return &entity.ProductWithSeller{Product: *product, Seller: *seller}, nil
}

// GetProducts lists active products matching the filter, joined with their
// sellers. Products whose seller cannot be resolved are silently dropped.
func (srv *productService) GetProducts(ctx context.Context, filter usecase.ProductFilter) ([]*entity.ProductWithSeller, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for product listing")
	}

	searchLower := strings.ToLower(filter.Search)

	results := make([]*entity.ProductWithSeller, 0)
	for _, product := range doc.Products {
		if !product.IsActive {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.SellerID != "" && product.SellerID != filter.SellerID {
			continue
		}
		if searchLower != "" &&
			!strings.Contains(strings.ToLower(product.Name), searchLower) &&
			!strings.Contains(strings.ToLower(product.Description), searchLower) {
			continue
		}

		seller := findSeller(doc, product.SellerID)
		if seller == nil {
			continue
		}

		results = append(results, &entity.ProductWithSeller{Product: *product, Seller: *seller})
	}

	return results, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	newProduct := &entity.Product{
		ID:                     uuid.NewString(),
		SellerID:               input.SellerID,
		Name:                   input.Name,
		Description:            input.Description,
		Price:                  input.Price,
		Category:               input.Category,
		Tags:                   input.Tags,
		Images:                 input.Images,
		SustainabilityFeatures: input.SustainabilityFeatures,
		StockQuantity:          input.StockQuantity,
		IsActive:               isActive,
		CarbonFootprint:        input.CarbonFootprint,
		RecycledContent:        input.RecycledContent,
		Biodegradable:          input.Biodegradable,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for product creation")
	}

	doc.Products = append(doc.Products, newProduct)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after product creation")
	}
	srv.log(ctx).Debug("Product created", slog.String("productID", newProduct.ID), slog.String("sellerID", newProduct.SellerID))

	return newProduct, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id string, input usecase.UpdateProductInput) (*entity.Product, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for product update")
	}

	var product *entity.Product
	for _, p := range doc.Products {
		if p.ID == id {
			product = p

			break
		}
	}
	if product == nil {
		return nil, errors.Wrap(repository.ErrProductNotFound, "failed to update product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.SustainabilityFeatures != nil {
		product.SustainabilityFeatures = *input.SustainabilityFeatures
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.CarbonFootprint != nil {
		product.CarbonFootprint = *input.CarbonFootprint
	}
	if input.RecycledContent != nil {
		product.RecycledContent = *input.RecycledContent
	}
	if input.Biodegradable != nil {
		product.Biodegradable = *input.Biodegradable
	}
	product.UpdatedAt = time.Now()

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after product update")
	}

	return product, nil
}

// DeleteProduct removes the product row entirely. Order items keep their
// price snapshots, so history survives the removal.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load document for product deletion")
	}

	remaining := make([]*entity.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(doc.Products) {
		return errors.Wrap(repository.ErrProductNotFound, "failed to delete product")
	}
	doc.Products = remaining

	if err := srv.store.Save(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save document after product deletion")
	}
	srv.log(ctx).Debug("Product deleted", slog.String("productID", id))

	return nil
}

func findSeller(doc *repository.Document, id string) *entity.Seller {
	for _, seller := range doc.Sellers {
		if seller.ID == id {
			return seller
		}
	}

	return nil
}
