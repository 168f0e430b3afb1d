package salesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	SaleService_CommitSale_FullMethodName        = "/omnipos.sales.v1.SaleService/CommitSale"
	SaleService_GetSale_FullMethodName           = "/omnipos.sales.v1.SaleService/GetSale"
	SaleService_ListSales_FullMethodName         = "/omnipos.sales.v1.SaleService/ListSales"
	SaleService_GetNextSaleNumber_FullMethodName = "/omnipos.sales.v1.SaleService/GetNextSaleNumber"
)

type SaleServiceServer interface {
	CommitSale(context.Context, *CommitSaleRequest) (*SaleResponse, error)
	GetSale(context.Context, *GetSaleRequest) (*SaleResponse, error)
	ListSales(context.Context, *ListSalesRequest) (*ListSalesResponse, error)
	GetNextSaleNumber(context.Context, *GetNextNumberRequest) (*NextNumberResponse, error)
}

// UnimplementedSaleServiceServer can be embedded to satisfy SaleServiceServer.
type UnimplementedSaleServiceServer struct{}

func (UnimplementedSaleServiceServer) CommitSale(context.Context, *CommitSaleRequest) (*SaleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitSale not implemented")
}

func (UnimplementedSaleServiceServer) GetSale(context.Context, *GetSaleRequest) (*SaleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSale not implemented")
}

func (UnimplementedSaleServiceServer) ListSales(context.Context, *ListSalesRequest) (*ListSalesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSales not implemented")
}

func (UnimplementedSaleServiceServer) GetNextSaleNumber(context.Context, *GetNextNumberRequest) (*NextNumberResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextSaleNumber not implemented")
}

func RegisterSaleServiceServer(s grpc.ServiceRegistrar, srv SaleServiceServer) {
	s.RegisterService(&SaleService_ServiceDesc, srv)
}

var _SaleService_CommitSale_Handler = unary(SaleService_CommitSale_FullMethodName, func(srv any, ctx context.Context, req *CommitSaleRequest) (*SaleResponse, error) {
	return srv.(SaleServiceServer).CommitSale(ctx, req)
})

var _SaleService_GetSale_Handler = unary(SaleService_GetSale_FullMethodName, func(srv any, ctx context.Context, req *GetSaleRequest) (*SaleResponse, error) {
	return srv.(SaleServiceServer).GetSale(ctx, req)
})

var _SaleService_ListSales_Handler = unary(SaleService_ListSales_FullMethodName, func(srv any, ctx context.Context, req *ListSalesRequest) (*ListSalesResponse, error) {
	return srv.(SaleServiceServer).ListSales(ctx, req)
})

var _SaleService_GetNextSaleNumber_Handler = unary(SaleService_GetNextSaleNumber_FullMethodName, func(srv any, ctx context.Context, req *GetNextNumberRequest) (*NextNumberResponse, error) {
	return srv.(SaleServiceServer).GetNextSaleNumber(ctx, req)
})

var SaleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.sales.v1.SaleService",
	HandlerType: (*SaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CommitSale",
			Handler:    _SaleService_CommitSale_Handler,
		},
		{
			MethodName: "GetSale",
			Handler:    _SaleService_GetSale_Handler,
		},
		{
			MethodName: "ListSales",
			Handler:    _SaleService_ListSales_Handler,
		},
		{
			MethodName: "GetNextSaleNumber",
			Handler:    _SaleService_GetNextSaleNumber_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/sales/v1/sale.proto",
}

type SaleServiceClient interface {
	CommitSale(ctx context.Context, in *CommitSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error)
	GetSale(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error)
	ListSales(ctx context.Context, in *ListSalesRequest, opts ...grpc.CallOption) (*ListSalesResponse, error)
	GetNextSaleNumber(ctx context.Context, in *GetNextNumberRequest, opts ...grpc.CallOption) (*NextNumberResponse, error)
}

type saleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSaleServiceClient(cc grpc.ClientConnInterface) SaleServiceClient {
	return &saleServiceClient{cc: cc}
}

func (c *saleServiceClient) CommitSale(ctx context.Context, in *CommitSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return invoke[SaleResponse](ctx, c.cc, SaleService_CommitSale_FullMethodName, in, opts)
}

func (c *saleServiceClient) GetSale(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return invoke[SaleResponse](ctx, c.cc, SaleService_GetSale_FullMethodName, in, opts)
}

func (c *saleServiceClient) ListSales(ctx context.Context, in *ListSalesRequest, opts ...grpc.CallOption) (*ListSalesResponse, error) {
	return invoke[ListSalesResponse](ctx, c.cc, SaleService_ListSales_FullMethodName, in, opts)
}

func (c *saleServiceClient) GetNextSaleNumber(ctx context.Context, in *GetNextNumberRequest, opts ...grpc.CallOption) (*NextNumberResponse, error) {
	return invoke[NextNumberResponse](ctx, c.cc, SaleService_GetNextSaleNumber_FullMethodName, in, opts)
}
