package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/validation"
	"github.com/fekuna/omnipos-sales-service/pkg/cache"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/fekuna/omnipos-sales-service/pkg/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	indexName    = "products"
	listCacheTTL = 5 * time.Minute
	codePrefix   = "MAT"
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"companyId": { "type": "keyword" },
			"branchId": { "type": "keyword" },
			"code": { "type": "keyword" },
			"name": { "type": "text" },
			"description": { "type": "text" },
			"category": { "type": "keyword" },
			"price": { "type": "double" },
			"createdAt": { "type": "date" }
		}
	}
}`

type productUseCase struct {
	repo   product.Repository
	locker lock.Locker
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewProductUseCase builds the catalog usecase. cache and es may be nil.
func NewProductUseCase(repo product.Repository, locker lock.Locker, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		locker: locker,
		cache:  cache,
		es:     es,
		logger: log.Named("product"),
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsCodeUnique(ctx, input.CompanyID, input.Code, "")
	if err != nil {
		return nil, fmt.Errorf("check product code: %w", err)
	}
	if !unique {
		return nil, &apperror.DuplicateCodeError{Entity: "product", Code: input.Code}
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:           model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID:           input.CompanyID,
		BranchID:            input.BranchID,
		Code:                input.Code,
		Name:                input.Name,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		Category:            input.Category,
		Unit:                input.Unit,
		Stock:               input.Stock,
		MinStock:            input.MinStock,
		Cost:                input.Cost,
		Price:               input.Price,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), p.CompanyID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, companyID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if p == nil || p.CompanyID != companyID {
		return nil, &apperror.ProductNotFoundError{ProductID: id}
	}
	return p, nil
}

type cachedList struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count"`
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		var hit cachedList
		if ok, err := uc.cache.GetJSON(ctx, cacheKey, &hit); err == nil && ok {
			return hit.Products, hit.Count, nil
		} else if err != nil {
			uc.logger.Warn("product list cache read failed", zap.Error(err))
		}
	}

	if filters.SearchQuery != "" && uc.es != nil {
		products, total, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return products, total, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	if cacheKey != "" && uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, cacheKey, cachedList{Products: products, Count: count}, listCacheTTL); err != nil {
			uc.logger.Warn("product list cache write failed", zap.Error(err))
		}
	}

	return products, count, nil
}

func (uc *productUseCase) searchElastic(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	must := []map[string]any{
		{
			"query_string": map[string]any{
				"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
				"fields": []string{"name^3", "code", "description", "category"},
			},
		},
		{"term": map[string]any{"companyId": filters.CompanyID}},
	}
	if filters.BranchID != "" {
		must = append(must, map[string]any{"term": map[string]any{"branchId": filters.BranchID}})
	}

	q := map[string]any{"query": map[string]any{"bool": map[string]any{"must": must}}}
	if filters.PageSize > 0 {
		q["size"] = filters.PageSize
		q["from"] = (max(filters.Page, 1) - 1) * filters.PageSize
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("product", input.ID))
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	p, err := uc.GetProduct(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	if p.Code != input.Code {
		unique, err := uc.repo.IsCodeUnique(ctx, input.CompanyID, input.Code, p.ID)
		if err != nil {
			return nil, fmt.Errorf("check product code: %w", err)
		}
		if !unique {
			return nil, &apperror.DuplicateCodeError{Entity: "product", Code: input.Code}
		}
	}

	p.Code = input.Code
	p.Name = input.Name
	p.Description = input.Description
	p.DetailedDescription = input.DetailedDescription
	p.Category = input.Category
	p.Unit = input.Unit
	p.MinStock = input.MinStock
	p.Cost = input.Cost
	p.Price = input.Price
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), p.CompanyID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, companyID, id string) error {
	release, err := uc.locker.Acquire(ctx, lock.Key("product", id))
	if err != nil {
		return apperror.Busy(err)
	}
	defer release()

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if p == nil || p.CompanyID != companyID {
		return nil // already gone
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	go uc.invalidateProductCache(context.Background(), companyID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), indexName, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}
	return nil
}

func (uc *productUseCase) NextProductCode(ctx context.Context, companyID string) (string, error) {
	codes, err := uc.repo.ListCodes(ctx, companyID, codePrefix)
	if err != nil {
		return "", fmt.Errorf("list product codes: %w", err)
	}
	return sequence.NextCode(codes, codePrefix, 3), nil
}

func (uc *productUseCase) RefreshCatalog(ctx context.Context, companyID string, productIDs ...string) {
	uc.invalidateProductCache(ctx, companyID)
	if uc.es == nil || len(productIDs) == 0 {
		return
	}

	products, err := uc.repo.FindByIDs(ctx, productIDs)
	if err != nil {
		uc.logger.Error("failed to load products for reindex", zap.Error(err))
		return
	}
	for i := range products {
		uc.syncToElastic(ctx, &products[i])
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	// Index creation is idempotent; an existing index is not an error.
	_ = uc.es.CreateIndex(ctx, indexName, indexMapping)

	if err := uc.es.Index(ctx, indexName, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%s:%x", filters.CompanyID, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context, companyID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, fmt.Sprintf("products:list:%s:*", companyID)); err != nil {
		uc.logger.Warn("failed to invalidate product cache", zap.String("company_id", companyID), zap.Error(err))
	}
}
