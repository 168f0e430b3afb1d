package router

import (
	"net/http"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	customerhandler "github.com/fekuna/omnipos-sales-service/internal/customer/handler"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerdto "github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	saledto "github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	salehandler "github.com/fekuna/omnipos-sales-service/internal/sale/handler"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type handler struct {
	sales  sale.UseCase
	credit ledger.UseCase
	logger logger.ZapLogger
}

type paymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *handler) commitSale(c *gin.Context) {
	var req salesv1.CommitSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	s, err := h.sales.CommitSale(ctx, salehandler.CommitInputFromProto(ctx, &req))
	if err != nil {
		h.fail(c, "commit sale", err)
		return
	}
	c.JSON(http.StatusCreated, salehandler.MapSaleToProto(s))
}

func (h *handler) listSales(c *gin.Context) {
	ctx := c.Request.Context()
	sales, err := h.sales.ListSales(ctx, &saledto.SaleFilters{
		CompanyID: auth.GetCompanyID(ctx),
		BranchID:  c.Query("branchId"),
	})
	if err != nil {
		h.fail(c, "list sales", err)
		return
	}

	out := make([]*salesv1.Sale, len(sales))
	for i := range sales {
		out[i] = salehandler.MapSaleToProto(&sales[i])
	}
	c.JSON(http.StatusOK, salesv1.ListSalesResponse{Sales: out})
}

func (h *handler) getSale(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.sales.GetSale(ctx, auth.GetCompanyID(ctx), c.Param("id"))
	if err != nil {
		h.fail(c, "get sale", err)
		return
	}
	c.JSON(http.StatusOK, salehandler.MapSaleToProto(s))
}

func (h *handler) recordPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	entry, err := h.credit.RecordPayment(ctx, &ledgerdto.PaymentInput{
		CompanyID:   auth.GetCompanyID(ctx),
		BranchID:    auth.GetBranchID(ctx),
		CustomerID:  c.Param("id"),
		Amount:      req.Amount,
		Description: req.Description,
		UserID:      auth.GetUserID(ctx),
	})
	if err != nil {
		h.fail(c, "record payment", err)
		return
	}
	c.JSON(http.StatusCreated, customerhandler.MapCreditTransactionToProto(entry))
}

func (h *handler) customerStanding(c *gin.Context) {
	ctx := c.Request.Context()
	standing, err := h.credit.GetCustomerStanding(ctx, auth.GetCompanyID(ctx), c.Param("id"))
	if err != nil {
		h.fail(c, "get customer standing", err)
		return
	}
	c.JSON(http.StatusOK, customerhandler.MapStandingToProto(standing))
}
