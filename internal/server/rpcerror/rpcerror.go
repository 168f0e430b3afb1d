// Package rpcerror converts usecase errors into gRPC statuses with a
// localized message and a google.rpc.ErrorInfo detail.
package rpcerror

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/pkg/i18n"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const Domain = "omnipos.sales.v1"

// Reasons carried in ErrorInfo.Reason.
const (
	ReasonValidation        = "VALIDATION_FAILED"
	ReasonCustomerRequired  = "CUSTOMER_REQUIRED_FOR_CREDIT"
	ReasonProductNotFound   = "PRODUCT_NOT_FOUND"
	ReasonCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ReasonSaleNotFound      = "SALE_NOT_FOUND"
	ReasonQuoteNotFound     = "QUOTE_NOT_FOUND"
	ReasonInsufficientStock = "INSUFFICIENT_STOCK"
	ReasonCreditLimit       = "CREDIT_LIMIT_EXCEEDED"
	ReasonPaymentExceeds    = "PAYMENT_EXCEEDS_DEBT"
	ReasonDuplicateCode     = "DUPLICATE_CODE"
	ReasonInvalidTransition = "INVALID_STATUS_TRANSITION"
	ReasonBusy              = "SYSTEM_BUSY"
	ReasonInternal          = "INTERNAL"
)

type mapped struct {
	code      codes.Code
	reason    string
	messageID string
	meta      map[string]string
}

func classify(err error) mapped {
	var (
		ve        *apperror.ValidationError
		notFound  *apperror.ProductNotFoundError
		stock     *apperror.InsufficientStockError
		credit    *apperror.CreditLimitExceededError
		payment   *apperror.PaymentExceedsDebtError
		duplicate *apperror.DuplicateCodeError
	)

	switch {
	case errors.As(err, &ve):
		keys := make([]string, 0, len(ve.Fields))
		for k := range ve.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		meta := make(map[string]string, len(ve.Fields)+1)
		for k, v := range ve.Fields {
			meta[k] = v
		}
		meta["fields"] = strings.Join(keys, ", ")
		return mapped{codes.InvalidArgument, ReasonValidation, "validation_failed", meta}
	case errors.Is(err, apperror.ErrCustomerRequiredForCredit):
		return mapped{codes.InvalidArgument, ReasonCustomerRequired, "customer_required_for_credit", nil}
	case errors.As(err, &notFound):
		return mapped{codes.NotFound, ReasonProductNotFound, "product_not_found", map[string]string{
			"product": notFound.ProductID,
		}}
	case errors.Is(err, apperror.ErrCustomerNotFound):
		return mapped{codes.NotFound, ReasonCustomerNotFound, "customer_not_found", nil}
	case errors.Is(err, apperror.ErrSaleNotFound):
		return mapped{codes.NotFound, ReasonSaleNotFound, "sale_not_found", nil}
	case errors.Is(err, apperror.ErrQuoteNotFound):
		return mapped{codes.NotFound, ReasonQuoteNotFound, "quote_not_found", nil}
	case errors.As(err, &stock):
		name := stock.ProductName
		if name == "" {
			name = stock.ProductID
		}
		return mapped{codes.FailedPrecondition, ReasonInsufficientStock, "insufficient_stock", map[string]string{
			"product":   name,
			"productId": stock.ProductID,
			"available": stock.Available.String(),
			"requested": stock.Requested.String(),
		}}
	case errors.As(err, &credit):
		return mapped{codes.FailedPrecondition, ReasonCreditLimit, "credit_limit_exceeded", map[string]string{
			"customerId":     credit.CustomerID,
			"limit":          credit.Limit.String(),
			"currentBalance": credit.CurrentBalance.String(),
			"newBalance":     credit.NewBalance.String(),
		}}
	case errors.As(err, &payment):
		return mapped{codes.FailedPrecondition, ReasonPaymentExceeds, "payment_exceeds_debt", map[string]string{
			"customerId":  payment.CustomerID,
			"amount":      payment.Amount.String(),
			"currentDebt": payment.CurrentDebt.String(),
		}}
	case errors.As(err, &duplicate):
		return mapped{codes.AlreadyExists, ReasonDuplicateCode, "duplicate_code", map[string]string{
			"entity": duplicate.Entity,
			"code":   duplicate.Code,
		}}
	case errors.Is(err, apperror.ErrInvalidStatusTransition):
		return mapped{codes.FailedPrecondition, ReasonInvalidTransition, "invalid_status_transition", nil}
	case errors.Is(err, apperror.ErrBusy):
		return mapped{codes.Unavailable, ReasonBusy, "system_busy", nil}
	case errors.Is(err, context.DeadlineExceeded):
		return mapped{codes.DeadlineExceeded, ReasonBusy, "system_busy", nil}
	}
	return mapped{codes.Internal, ReasonInternal, "internal_error", nil}
}

// templateData turns ErrorInfo metadata into go-i18n template fields.
func templateData(meta map[string]string) map[string]any {
	data := make(map[string]any, len(meta))
	for k, v := range meta {
		if k == "" {
			continue
		}
		data[strings.ToUpper(k[:1])+k[1:]] = v
	}
	return data
}

// Status logs err at a level matching its class and returns the gRPC error.
func Status(ctx context.Context, log logger.ZapLogger, op string, err error) error {
	m := classify(err)

	fields := []zap.Field{zap.Error(err)}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}

	switch {
	case m.code == codes.Internal:
		log.Error(op+" failed", fields...)
	case m.code == codes.Unavailable || m.code == codes.DeadlineExceeded:
		log.Warn(op+" failed", fields...)
	default:
		log.Info(op+" rejected", append(fields, zap.String("reason", m.reason))...)
	}

	msg := i18n.Localize(i18n.LanguageFrom(ctx), m.messageID, templateData(m.meta))
	st := status.New(m.code, msg)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   m.reason,
		Domain:   Domain,
		Metadata: m.meta,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ErrorInfo extracts the ErrorInfo detail from a status error, if any.
func ErrorInfo(err error) *errdetails.ErrorInfo {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	return nil
}
