// Package server assembles the gRPC server shared by cmd/grpc and tests.
package server

import (
	"context"
	"time"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Services holds the handlers to register. Nil entries are skipped.
type Services struct {
	Product   salesv1.ProductServiceServer
	Inventory salesv1.InventoryServiceServer
	Customer  salesv1.CustomerServiceServer
	Sale      salesv1.SaleServiceServer
	Quote     salesv1.QuoteServiceServer
}

// NewGRPCServer registers svc behind the auth interceptor. Calls without a
// deadline get one of timeout.
func NewGRPCServer(authn *auth.Authenticator, timeout time.Duration, svc Services, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(deadlineInterceptor(timeout), authn.UnaryInterceptor()),
	}, opts...)
	s := grpc.NewServer(opts...)

	if svc.Product != nil {
		salesv1.RegisterProductServiceServer(s, svc.Product)
	}
	if svc.Inventory != nil {
		salesv1.RegisterInventoryServiceServer(s, svc.Inventory)
	}
	if svc.Customer != nil {
		salesv1.RegisterCustomerServiceServer(s, svc.Customer)
	}
	if svc.Sale != nil {
		salesv1.RegisterSaleServiceServer(s, svc.Sale)
	}
	if svc.Quote != nil {
		salesv1.RegisterQuoteServiceServer(s, svc.Quote)
	}

	reflection.Register(s)
	return s
}

func deadlineInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); !ok && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return handler(ctx, req)
	}
}
