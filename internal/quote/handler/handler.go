package handler

import (
	"context"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/quote"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
	saledto "github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	salehandler "github.com/fekuna/omnipos-sales-service/internal/sale/handler"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type QuoteHandler struct {
	salesv1.UnimplementedQuoteServiceServer
	uc     quote.UseCase
	logger logger.ZapLogger
}

func NewQuoteHandler(uc quote.UseCase, log logger.ZapLogger) *QuoteHandler {
	return &QuoteHandler{
		uc:     uc,
		logger: log.Named("quote.handler"),
	}
}

func (h *QuoteHandler) CreateQuote(ctx context.Context, req *salesv1.CreateQuoteRequest) (*salesv1.QuoteResponse, error) {
	items := make([]saledto.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		if it == nil {
			continue
		}
		items = append(items, saledto.SaleItemInput{
			ProductID:   it.ProductId,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
		})
	}

	q, err := h.uc.CreateQuote(ctx, &dto.CreateQuoteInput{
		CompanyID:        auth.GetCompanyID(ctx),
		BranchID:         auth.GetBranchID(ctx),
		UserID:           auth.GetUserID(ctx),
		ValidUntil:       req.ValidUntil,
		CustomerID:       req.CustomerId,
		CustomerName:     req.CustomerName,
		CustomerDocument: req.CustomerDocument,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		Items:            items,
		Discount:         req.Discount,
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "create quote", err)
	}
	return &salesv1.QuoteResponse{Quote: mapQuoteToProto(q)}, nil
}

func (h *QuoteHandler) GetQuote(ctx context.Context, req *salesv1.GetQuoteRequest) (*salesv1.QuoteResponse, error) {
	q, err := h.uc.GetQuote(ctx, auth.GetCompanyID(ctx), req.Id)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get quote", err)
	}
	return &salesv1.QuoteResponse{Quote: mapQuoteToProto(q)}, nil
}

func (h *QuoteHandler) ListQuotes(ctx context.Context, req *salesv1.ListQuotesRequest) (*salesv1.ListQuotesResponse, error) {
	quotes, err := h.uc.ListQuotes(ctx, &dto.QuoteFilters{
		CompanyID: auth.GetCompanyID(ctx),
		BranchID:  req.BranchId,
	})
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list quotes", err)
	}

	out := make([]*salesv1.Quote, len(quotes))
	for i := range quotes {
		out[i] = mapQuoteToProto(&quotes[i])
	}
	return &salesv1.ListQuotesResponse{Quotes: out}, nil
}

func (h *QuoteHandler) UpdateQuoteStatus(ctx context.Context, req *salesv1.UpdateQuoteStatusRequest) (*salesv1.QuoteResponse, error) {
	q, err := h.uc.UpdateQuoteStatus(ctx, &dto.UpdateStatusInput{
		CompanyID: auth.GetCompanyID(ctx),
		ID:        req.Id,
		Status:    req.Status,
	})
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "update quote status", err)
	}
	return &salesv1.QuoteResponse{Quote: mapQuoteToProto(q)}, nil
}

func (h *QuoteHandler) GetNextQuoteNumber(ctx context.Context, _ *salesv1.GetNextNumberRequest) (*salesv1.NextNumberResponse, error) {
	number, err := h.uc.PeekNextQuoteNumber(ctx, auth.GetCompanyID(ctx), auth.GetBranchID(ctx))
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "next quote number", err)
	}
	return &salesv1.NextNumberResponse{Number: number}, nil
}

func mapQuoteToProto(q *model.Quote) *salesv1.Quote {
	out := &salesv1.Quote{
		Id:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		Date:             q.Date,
		ValidUntil:       q.ValidUntil,
		CustomerName:     q.CustomerName,
		CustomerDocument: q.CustomerDocument,
		CustomerPhone:    q.CustomerPhone,
		CustomerEmail:    q.CustomerEmail,
		Items:            salehandler.MapItemsToProto(q.Items),
		Subtotal:         q.Subtotal,
		Discount:         q.Discount,
		Tax:              q.Tax,
		Total:            q.Total,
		Status:           q.Status,
		Notes:            q.Notes,
		CompanyId:        q.CompanyID,
		BranchId:         q.BranchID,
		CreatedBy:        q.CreatedBy,
		CreatedAt:        q.CreatedAt,
	}
	if q.CustomerID != nil {
		out.CustomerId = *q.CustomerID
	}
	return out
}
