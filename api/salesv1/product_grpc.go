package salesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ProductService_CreateProduct_FullMethodName      = "/omnipos.sales.v1.ProductService/CreateProduct"
	ProductService_GetProduct_FullMethodName         = "/omnipos.sales.v1.ProductService/GetProduct"
	ProductService_ListProducts_FullMethodName       = "/omnipos.sales.v1.ProductService/ListProducts"
	ProductService_UpdateProduct_FullMethodName      = "/omnipos.sales.v1.ProductService/UpdateProduct"
	ProductService_DeleteProduct_FullMethodName      = "/omnipos.sales.v1.ProductService/DeleteProduct"
	ProductService_GetNextProductCode_FullMethodName = "/omnipos.sales.v1.ProductService/GetNextProductCode"
)

type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	GetNextProductCode(context.Context, *GetNextCodeRequest) (*NextCodeResponse, error)
}

// UnimplementedProductServiceServer can be embedded to satisfy ProductServiceServer.
type UnimplementedProductServiceServer struct{}

func (UnimplementedProductServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}

func (UnimplementedProductServiceServer) GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedProductServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedProductServiceServer) UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}

func (UnimplementedProductServiceServer) DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}

func (UnimplementedProductServiceServer) GetNextProductCode(context.Context, *GetNextCodeRequest) (*NextCodeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextProductCode not implemented")
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

var _ProductService_CreateProduct_Handler = unary(ProductService_CreateProduct_FullMethodName, func(srv any, ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	return srv.(ProductServiceServer).CreateProduct(ctx, req)
})

var _ProductService_GetProduct_Handler = unary(ProductService_GetProduct_FullMethodName, func(srv any, ctx context.Context, req *GetProductRequest) (*ProductResponse, error) {
	return srv.(ProductServiceServer).GetProduct(ctx, req)
})

var _ProductService_ListProducts_Handler = unary(ProductService_ListProducts_FullMethodName, func(srv any, ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	return srv.(ProductServiceServer).ListProducts(ctx, req)
})

var _ProductService_UpdateProduct_Handler = unary(ProductService_UpdateProduct_FullMethodName, func(srv any, ctx context.Context, req *UpdateProductRequest) (*ProductResponse, error) {
	return srv.(ProductServiceServer).UpdateProduct(ctx, req)
})

var _ProductService_DeleteProduct_Handler = unary(ProductService_DeleteProduct_FullMethodName, func(srv any, ctx context.Context, req *DeleteProductRequest) (*Empty, error) {
	return srv.(ProductServiceServer).DeleteProduct(ctx, req)
})

var _ProductService_GetNextProductCode_Handler = unary(ProductService_GetNextProductCode_FullMethodName, func(srv any, ctx context.Context, req *GetNextCodeRequest) (*NextCodeResponse, error) {
	return srv.(ProductServiceServer).GetNextProductCode(ctx, req)
})

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.sales.v1.ProductService",
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProduct",
			Handler:    _ProductService_CreateProduct_Handler,
		},
		{
			MethodName: "GetProduct",
			Handler:    _ProductService_GetProduct_Handler,
		},
		{
			MethodName: "ListProducts",
			Handler:    _ProductService_ListProducts_Handler,
		},
		{
			MethodName: "UpdateProduct",
			Handler:    _ProductService_UpdateProduct_Handler,
		},
		{
			MethodName: "DeleteProduct",
			Handler:    _ProductService_DeleteProduct_Handler,
		},
		{
			MethodName: "GetNextProductCode",
			Handler:    _ProductService_GetNextProductCode_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/sales/v1/product.proto",
}

type ProductServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error)
	GetNextProductCode(ctx context.Context, in *GetNextCodeRequest, opts ...grpc.CallOption) (*NextCodeResponse, error)
}

type productServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc: cc}
}

func (c *productServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_CreateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_GetProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductService_ListProducts_FullMethodName, in, opts)
}

func (c *productServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_UpdateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ProductService_DeleteProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) GetNextProductCode(ctx context.Context, in *GetNextCodeRequest, opts ...grpc.CallOption) (*NextCodeResponse, error) {
	return invoke[NextCodeResponse](ctx, c.cc, ProductService_GetNextProductCode_FullMethodName, in, opts)
}
