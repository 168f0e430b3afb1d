package salesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	QuoteService_CreateQuote_FullMethodName        = "/omnipos.sales.v1.QuoteService/CreateQuote"
	QuoteService_GetQuote_FullMethodName           = "/omnipos.sales.v1.QuoteService/GetQuote"
	QuoteService_ListQuotes_FullMethodName         = "/omnipos.sales.v1.QuoteService/ListQuotes"
	QuoteService_UpdateQuoteStatus_FullMethodName  = "/omnipos.sales.v1.QuoteService/UpdateQuoteStatus"
	QuoteService_GetNextQuoteNumber_FullMethodName = "/omnipos.sales.v1.QuoteService/GetNextQuoteNumber"
)

type QuoteServiceServer interface {
	CreateQuote(context.Context, *CreateQuoteRequest) (*QuoteResponse, error)
	GetQuote(context.Context, *GetQuoteRequest) (*QuoteResponse, error)
	ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error)
	UpdateQuoteStatus(context.Context, *UpdateQuoteStatusRequest) (*QuoteResponse, error)
	GetNextQuoteNumber(context.Context, *GetNextNumberRequest) (*NextNumberResponse, error)
}

// UnimplementedQuoteServiceServer can be embedded to satisfy QuoteServiceServer.
type UnimplementedQuoteServiceServer struct{}

func (UnimplementedQuoteServiceServer) CreateQuote(context.Context, *CreateQuoteRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateQuote not implemented")
}

func (UnimplementedQuoteServiceServer) GetQuote(context.Context, *GetQuoteRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuote not implemented")
}

func (UnimplementedQuoteServiceServer) ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListQuotes not implemented")
}

func (UnimplementedQuoteServiceServer) UpdateQuoteStatus(context.Context, *UpdateQuoteStatusRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateQuoteStatus not implemented")
}

func (UnimplementedQuoteServiceServer) GetNextQuoteNumber(context.Context, *GetNextNumberRequest) (*NextNumberResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextQuoteNumber not implemented")
}

func RegisterQuoteServiceServer(s grpc.ServiceRegistrar, srv QuoteServiceServer) {
	s.RegisterService(&QuoteService_ServiceDesc, srv)
}

var _QuoteService_CreateQuote_Handler = unary(QuoteService_CreateQuote_FullMethodName, func(srv any, ctx context.Context, req *CreateQuoteRequest) (*QuoteResponse, error) {
	return srv.(QuoteServiceServer).CreateQuote(ctx, req)
})

var _QuoteService_GetQuote_Handler = unary(QuoteService_GetQuote_FullMethodName, func(srv any, ctx context.Context, req *GetQuoteRequest) (*QuoteResponse, error) {
	return srv.(QuoteServiceServer).GetQuote(ctx, req)
})

var _QuoteService_ListQuotes_Handler = unary(QuoteService_ListQuotes_FullMethodName, func(srv any, ctx context.Context, req *ListQuotesRequest) (*ListQuotesResponse, error) {
	return srv.(QuoteServiceServer).ListQuotes(ctx, req)
})

var _QuoteService_UpdateQuoteStatus_Handler = unary(QuoteService_UpdateQuoteStatus_FullMethodName, func(srv any, ctx context.Context, req *UpdateQuoteStatusRequest) (*QuoteResponse, error) {
	return srv.(QuoteServiceServer).UpdateQuoteStatus(ctx, req)
})

var _QuoteService_GetNextQuoteNumber_Handler = unary(QuoteService_GetNextQuoteNumber_FullMethodName, func(srv any, ctx context.Context, req *GetNextNumberRequest) (*NextNumberResponse, error) {
	return srv.(QuoteServiceServer).GetNextQuoteNumber(ctx, req)
})

var QuoteService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.sales.v1.QuoteService",
	HandlerType: (*QuoteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateQuote",
			Handler:    _QuoteService_CreateQuote_Handler,
		},
		{
			MethodName: "GetQuote",
			Handler:    _QuoteService_GetQuote_Handler,
		},
		{
			MethodName: "ListQuotes",
			Handler:    _QuoteService_ListQuotes_Handler,
		},
		{
			MethodName: "UpdateQuoteStatus",
			Handler:    _QuoteService_UpdateQuoteStatus_Handler,
		},
		{
			MethodName: "GetNextQuoteNumber",
			Handler:    _QuoteService_GetNextQuoteNumber_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/sales/v1/quote.proto",
}

type QuoteServiceClient interface {
	CreateQuote(ctx context.Context, in *CreateQuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
	GetQuote(ctx context.Context, in *GetQuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
	ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error)
	UpdateQuoteStatus(ctx context.Context, in *UpdateQuoteStatusRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
	GetNextQuoteNumber(ctx context.Context, in *GetNextNumberRequest, opts ...grpc.CallOption) (*NextNumberResponse, error)
}

type quoteServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQuoteServiceClient(cc grpc.ClientConnInterface) QuoteServiceClient {
	return &quoteServiceClient{cc: cc}
}

func (c *quoteServiceClient) CreateQuote(ctx context.Context, in *CreateQuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, QuoteService_CreateQuote_FullMethodName, in, opts)
}

func (c *quoteServiceClient) GetQuote(ctx context.Context, in *GetQuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, QuoteService_GetQuote_FullMethodName, in, opts)
}

func (c *quoteServiceClient) ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error) {
	return invoke[ListQuotesResponse](ctx, c.cc, QuoteService_ListQuotes_FullMethodName, in, opts)
}

func (c *quoteServiceClient) UpdateQuoteStatus(ctx context.Context, in *UpdateQuoteStatusRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, QuoteService_UpdateQuoteStatus_FullMethodName, in, opts)
}

func (c *quoteServiceClient) GetNextQuoteNumber(ctx context.Context, in *GetNextNumberRequest, opts ...grpc.CallOption) (*NextNumberResponse, error) {
	return invoke[NextNumberResponse](ctx, c.cc, QuoteService_GetNextQuoteNumber_FullMethodName, in, opts)
}
