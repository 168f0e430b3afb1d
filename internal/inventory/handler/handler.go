package handler

import (
	"context"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	producthandler "github.com/fekuna/omnipos-sales-service/internal/product/handler"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type InventoryHandler struct {
	salesv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log.Named("inventory.handler"),
	}
}

func (h *InventoryHandler) GetStock(ctx context.Context, req *salesv1.GetStockRequest) (*salesv1.StockResponse, error) {
	stock, err := h.uc.GetStock(ctx, auth.GetCompanyID(ctx), req.ProductId)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get stock", err)
	}
	return &salesv1.StockResponse{ProductId: req.ProductId, Stock: stock}, nil
}

func (h *InventoryHandler) AdjustStock(ctx context.Context, req *salesv1.AdjustStockRequest) (*salesv1.StockResponse, error) {
	input := &dto.AdjustStockInput{
		CompanyID:      auth.GetCompanyID(ctx),
		ProductID:      req.ProductId,
		MovementType:   model.MovementAdjustment,
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceId,
		UserID:         auth.GetUserID(ctx),
	}

	stock, err := h.uc.AdjustStock(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "adjust stock", err)
	}
	return &salesv1.StockResponse{ProductId: req.ProductId, Stock: stock}, nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *salesv1.ListMovementsRequest) (*salesv1.ListMovementsResponse, error) {
	filters := &dto.MovementFilters{
		CompanyID:    auth.GetCompanyID(ctx),
		ProductID:    req.ProductId,
		MovementType: req.MovementType,
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	}

	movements, count, err := h.uc.ListMovements(ctx, filters)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list movements", err)
	}

	out := make([]*salesv1.StockMovement, len(movements))
	for i := range movements {
		out[i] = mapMovementToProto(&movements[i])
	}
	return &salesv1.ListMovementsResponse{Movements: out, Total: int32(count)}, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, _ *salesv1.ListLowStockRequest) (*salesv1.ListProductsResponse, error) {
	products, err := h.uc.ListLowStock(ctx, auth.GetCompanyID(ctx))
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list low stock", err)
	}
	return &salesv1.ListProductsResponse{
		Products: producthandler.MapProductsToProto(products),
		Total:    int32(len(products)),
	}, nil
}

func mapMovementToProto(m *model.StockMovement) *salesv1.StockMovement {
	return &salesv1.StockMovement{
		Id:             m.ID,
		ProductId:      m.ProductID,
		MovementType:   m.MovementType,
		QuantityChange: m.QuantityChange,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		ReferenceType:  deref(m.ReferenceType),
		ReferenceId:    deref(m.ReferenceID),
		Notes:          m.Notes,
		CreatedBy:      deref(m.CreatedBy),
		CreatedAt:      m.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
