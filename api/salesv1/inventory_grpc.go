package salesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryService_GetStock_FullMethodName      = "/omnipos.sales.v1.InventoryService/GetStock"
	InventoryService_AdjustStock_FullMethodName   = "/omnipos.sales.v1.InventoryService/AdjustStock"
	InventoryService_ListMovements_FullMethodName = "/omnipos.sales.v1.InventoryService/ListMovements"
	InventoryService_ListLowStock_FullMethodName  = "/omnipos.sales.v1.InventoryService/ListLowStock"
)

type InventoryServiceServer interface {
	GetStock(context.Context, *GetStockRequest) (*StockResponse, error)
	AdjustStock(context.Context, *AdjustStockRequest) (*StockResponse, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListProductsResponse, error)
}

// UnimplementedInventoryServiceServer can be embedded to satisfy InventoryServiceServer.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) GetStock(context.Context, *GetStockRequest) (*StockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStock not implemented")
}

func (UnimplementedInventoryServiceServer) AdjustStock(context.Context, *AdjustStockRequest) (*StockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustStock not implemented")
}

func (UnimplementedInventoryServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

func (UnimplementedInventoryServiceServer) ListLowStock(context.Context, *ListLowStockRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLowStock not implemented")
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

var _InventoryService_GetStock_Handler = unary(InventoryService_GetStock_FullMethodName, func(srv any, ctx context.Context, req *GetStockRequest) (*StockResponse, error) {
	return srv.(InventoryServiceServer).GetStock(ctx, req)
})

var _InventoryService_AdjustStock_Handler = unary(InventoryService_AdjustStock_FullMethodName, func(srv any, ctx context.Context, req *AdjustStockRequest) (*StockResponse, error) {
	return srv.(InventoryServiceServer).AdjustStock(ctx, req)
})

var _InventoryService_ListMovements_Handler = unary(InventoryService_ListMovements_FullMethodName, func(srv any, ctx context.Context, req *ListMovementsRequest) (*ListMovementsResponse, error) {
	return srv.(InventoryServiceServer).ListMovements(ctx, req)
})

var _InventoryService_ListLowStock_Handler = unary(InventoryService_ListLowStock_FullMethodName, func(srv any, ctx context.Context, req *ListLowStockRequest) (*ListProductsResponse, error) {
	return srv.(InventoryServiceServer).ListLowStock(ctx, req)
})

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.sales.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStock",
			Handler:    _InventoryService_GetStock_Handler,
		},
		{
			MethodName: "AdjustStock",
			Handler:    _InventoryService_AdjustStock_Handler,
		},
		{
			MethodName: "ListMovements",
			Handler:    _InventoryService_ListMovements_Handler,
		},
		{
			MethodName: "ListLowStock",
			Handler:    _InventoryService_ListLowStock_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/sales/v1/inventory.proto",
}

type InventoryServiceClient interface {
	GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockResponse, error)
	AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockResponse, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
	ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockResponse, error) {
	return invoke[StockResponse](ctx, c.cc, InventoryService_GetStock_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockResponse, error) {
	return invoke[StockResponse](ctx, c.cc, InventoryService_AdjustStock_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	return invoke[ListMovementsResponse](ctx, c.cc, InventoryService_ListMovements_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, InventoryService_ListLowStock_FullMethodName, in, opts)
}
