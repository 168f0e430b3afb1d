package handler

import (
	"context"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type SaleHandler struct {
	salesv1.UnimplementedSaleServiceServer
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log.Named("sale.handler"),
	}
}

func (h *SaleHandler) CommitSale(ctx context.Context, req *salesv1.CommitSaleRequest) (*salesv1.SaleResponse, error) {
	s, err := h.uc.CommitSale(ctx, CommitInputFromProto(ctx, req))
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "commit sale", err)
	}
	return &salesv1.SaleResponse{Sale: MapSaleToProto(s)}, nil
}

func (h *SaleHandler) GetSale(ctx context.Context, req *salesv1.GetSaleRequest) (*salesv1.SaleResponse, error) {
	var (
		s   *model.Sale
		err error
	)
	switch {
	case req.Id != "":
		s, err = h.uc.GetSale(ctx, auth.GetCompanyID(ctx), req.Id)
	case req.SaleNumber != "":
		s, err = h.uc.GetSaleByNumber(ctx, auth.GetCompanyID(ctx), auth.GetBranchID(ctx), req.SaleNumber)
	default:
		err = apperror.NewValidationError("id", "required")
	}
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get sale", err)
	}
	return &salesv1.SaleResponse{Sale: MapSaleToProto(s)}, nil
}

func (h *SaleHandler) ListSales(ctx context.Context, req *salesv1.ListSalesRequest) (*salesv1.ListSalesResponse, error) {
	sales, err := h.uc.ListSales(ctx, &dto.SaleFilters{
		CompanyID: auth.GetCompanyID(ctx),
		BranchID:  req.BranchId,
	})
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list sales", err)
	}

	out := make([]*salesv1.Sale, len(sales))
	for i := range sales {
		out[i] = MapSaleToProto(&sales[i])
	}
	return &salesv1.ListSalesResponse{Sales: out}, nil
}

func (h *SaleHandler) GetNextSaleNumber(ctx context.Context, _ *salesv1.GetNextNumberRequest) (*salesv1.NextNumberResponse, error) {
	number, err := h.uc.PeekNextSaleNumber(ctx, auth.GetCompanyID(ctx), auth.GetBranchID(ctx))
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "next sale number", err)
	}
	return &salesv1.NextNumberResponse{Number: number}, nil
}

// CommitInputFromProto builds the engine input, taking tenant and user from ctx.
func CommitInputFromProto(ctx context.Context, req *salesv1.CommitSaleRequest) *dto.CommitSaleInput {
	items := make([]dto.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		if it == nil {
			continue
		}
		items = append(items, dto.SaleItemInput{
			ProductID:   it.ProductId,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
		})
	}

	return &dto.CommitSaleInput{
		CompanyID:        auth.GetCompanyID(ctx),
		BranchID:         auth.GetBranchID(ctx),
		UserID:           auth.GetUserID(ctx),
		CustomerID:       req.CustomerId,
		CustomerName:     req.CustomerName,
		CustomerDocument: req.CustomerDocument,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		Items:            items,
		Discount:         req.Discount,
		PaymentType:      req.PaymentType,
		PaymentMethod:    req.PaymentMethod,
		Notes:            req.Notes,
	}
}

func MapItemsToProto(items model.SaleItems) []*salesv1.SaleItem {
	out := make([]*salesv1.SaleItem, len(items))
	for i, it := range items {
		out[i] = &salesv1.SaleItem{
			ProductId:   it.ProductID,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Subtotal:    it.Subtotal,
		}
	}
	return out
}

func MapSaleToProto(s *model.Sale) *salesv1.Sale {
	out := &salesv1.Sale{
		Id:               s.ID,
		SaleNumber:       s.SaleNumber,
		Date:             s.Date,
		CustomerName:     s.CustomerName,
		CustomerDocument: s.CustomerDocument,
		CustomerPhone:    s.CustomerPhone,
		CustomerEmail:    s.CustomerEmail,
		Items:            MapItemsToProto(s.Items),
		Subtotal:         s.Subtotal,
		Discount:         s.Discount,
		Tax:              s.Tax,
		Total:            s.Total,
		PaymentMethod:    s.PaymentMethod,
		PaymentType:      s.PaymentType,
		Status:           s.Status,
		Notes:            s.Notes,
		CompanyId:        s.CompanyID,
		BranchId:         s.BranchID,
		CreatedBy:        s.CreatedBy,
		CreatedAt:        s.CreatedAt,
	}
	if s.CustomerID != nil {
		out.CustomerId = *s.CustomerID
	}
	return out
}
