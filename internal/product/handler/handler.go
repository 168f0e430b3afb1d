package handler

import (
	"context"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type ProductHandler struct {
	salesv1.UnimplementedProductServiceServer
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log.Named("product.handler"),
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *salesv1.CreateProductRequest) (*salesv1.ProductResponse, error) {
	input := &dto.CreateProductInput{
		CompanyID:           auth.GetCompanyID(ctx),
		BranchID:            auth.GetBranchID(ctx),
		Code:                req.Code,
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		Unit:                req.Unit,
		Stock:               req.Stock,
		MinStock:            req.MinStock,
		Cost:                req.Cost,
		Price:               req.Price,
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "create product", err)
	}
	return &salesv1.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *salesv1.GetProductRequest) (*salesv1.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, auth.GetCompanyID(ctx), req.Id)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get product", err)
	}
	return &salesv1.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *salesv1.ListProductsRequest) (*salesv1.ListProductsResponse, error) {
	filters := &dto.ProductFilters{
		CompanyID:   auth.GetCompanyID(ctx),
		BranchID:    req.BranchId,
		Category:    req.Category,
		SearchQuery: req.Query,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}

	products, count, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list products", err)
	}

	return &salesv1.ListProductsResponse{
		Products: MapProductsToProto(products),
		Total:    int32(count),
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *salesv1.UpdateProductRequest) (*salesv1.ProductResponse, error) {
	input := &dto.UpdateProductInput{
		ID:                  req.Id,
		CompanyID:           auth.GetCompanyID(ctx),
		Code:                req.Code,
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		Unit:                req.Unit,
		MinStock:            req.MinStock,
		Cost:                req.Cost,
		Price:               req.Price,
	}

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "update product", err)
	}
	return &salesv1.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *salesv1.DeleteProductRequest) (*salesv1.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, auth.GetCompanyID(ctx), req.Id); err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "delete product", err)
	}
	return &salesv1.Empty{}, nil
}

func (h *ProductHandler) GetNextProductCode(ctx context.Context, _ *salesv1.GetNextCodeRequest) (*salesv1.NextCodeResponse, error) {
	code, err := h.uc.NextProductCode(ctx, auth.GetCompanyID(ctx))
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "next product code", err)
	}
	return &salesv1.NextCodeResponse{Code: code}, nil
}

func MapProductsToProto(products []model.Product) []*salesv1.Product {
	out := make([]*salesv1.Product, len(products))
	for i := range products {
		out[i] = MapProductToProto(&products[i])
	}
	return out
}

func MapProductToProto(m *model.Product) *salesv1.Product {
	if m == nil {
		return nil
	}
	return &salesv1.Product{
		Id:                  m.ID,
		CompanyId:           m.CompanyID,
		BranchId:            m.BranchID,
		Code:                m.Code,
		Name:                m.Name,
		Description:         m.Description,
		DetailedDescription: m.DetailedDescription,
		Category:            m.Category,
		Unit:                m.Unit,
		Stock:               m.Stock,
		MinStock:            m.MinStock,
		Cost:                m.Cost,
		Price:               m.Price,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
