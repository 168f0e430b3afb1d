package salesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CustomerService_CreateCustomer_FullMethodName      = "/omnipos.sales.v1.CustomerService/CreateCustomer"
	CustomerService_GetCustomer_FullMethodName         = "/omnipos.sales.v1.CustomerService/GetCustomer"
	CustomerService_ListCustomers_FullMethodName       = "/omnipos.sales.v1.CustomerService/ListCustomers"
	CustomerService_UpdateCustomer_FullMethodName      = "/omnipos.sales.v1.CustomerService/UpdateCustomer"
	CustomerService_GetNextCustomerCode_FullMethodName = "/omnipos.sales.v1.CustomerService/GetNextCustomerCode"
	CustomerService_RecordPayment_FullMethodName       = "/omnipos.sales.v1.CustomerService/RecordPayment"
	CustomerService_GetCustomerStanding_FullMethodName = "/omnipos.sales.v1.CustomerService/GetCustomerStanding"
)

type CustomerServiceServer interface {
	CreateCustomer(context.Context, *CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomer(context.Context, *GetCustomerRequest) (*CustomerResponse, error)
	ListCustomers(context.Context, *ListCustomersRequest) (*ListCustomersResponse, error)
	UpdateCustomer(context.Context, *UpdateCustomerRequest) (*CustomerResponse, error)
	GetNextCustomerCode(context.Context, *GetNextCodeRequest) (*NextCodeResponse, error)
	RecordPayment(context.Context, *RecordPaymentRequest) (*CreditTransactionResponse, error)
	GetCustomerStanding(context.Context, *GetCustomerStandingRequest) (*CustomerStandingResponse, error)
}

// UnimplementedCustomerServiceServer can be embedded to satisfy CustomerServiceServer.
type UnimplementedCustomerServiceServer struct{}

func (UnimplementedCustomerServiceServer) CreateCustomer(context.Context, *CreateCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCustomer not implemented")
}

func (UnimplementedCustomerServiceServer) GetCustomer(context.Context, *GetCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCustomer not implemented")
}

func (UnimplementedCustomerServiceServer) ListCustomers(context.Context, *ListCustomersRequest) (*ListCustomersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCustomers not implemented")
}

func (UnimplementedCustomerServiceServer) UpdateCustomer(context.Context, *UpdateCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCustomer not implemented")
}

func (UnimplementedCustomerServiceServer) GetNextCustomerCode(context.Context, *GetNextCodeRequest) (*NextCodeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextCustomerCode not implemented")
}

func (UnimplementedCustomerServiceServer) RecordPayment(context.Context, *RecordPaymentRequest) (*CreditTransactionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordPayment not implemented")
}

func (UnimplementedCustomerServiceServer) GetCustomerStanding(context.Context, *GetCustomerStandingRequest) (*CustomerStandingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCustomerStanding not implemented")
}

func RegisterCustomerServiceServer(s grpc.ServiceRegistrar, srv CustomerServiceServer) {
	s.RegisterService(&CustomerService_ServiceDesc, srv)
}

var _CustomerService_CreateCustomer_Handler = unary(CustomerService_CreateCustomer_FullMethodName, func(srv any, ctx context.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	return srv.(CustomerServiceServer).CreateCustomer(ctx, req)
})

var _CustomerService_GetCustomer_Handler = unary(CustomerService_GetCustomer_FullMethodName, func(srv any, ctx context.Context, req *GetCustomerRequest) (*CustomerResponse, error) {
	return srv.(CustomerServiceServer).GetCustomer(ctx, req)
})

var _CustomerService_ListCustomers_Handler = unary(CustomerService_ListCustomers_FullMethodName, func(srv any, ctx context.Context, req *ListCustomersRequest) (*ListCustomersResponse, error) {
	return srv.(CustomerServiceServer).ListCustomers(ctx, req)
})

var _CustomerService_UpdateCustomer_Handler = unary(CustomerService_UpdateCustomer_FullMethodName, func(srv any, ctx context.Context, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	return srv.(CustomerServiceServer).UpdateCustomer(ctx, req)
})

var _CustomerService_GetNextCustomerCode_Handler = unary(CustomerService_GetNextCustomerCode_FullMethodName, func(srv any, ctx context.Context, req *GetNextCodeRequest) (*NextCodeResponse, error) {
	return srv.(CustomerServiceServer).GetNextCustomerCode(ctx, req)
})

var _CustomerService_RecordPayment_Handler = unary(CustomerService_RecordPayment_FullMethodName, func(srv any, ctx context.Context, req *RecordPaymentRequest) (*CreditTransactionResponse, error) {
	return srv.(CustomerServiceServer).RecordPayment(ctx, req)
})

var _CustomerService_GetCustomerStanding_Handler = unary(CustomerService_GetCustomerStanding_FullMethodName, func(srv any, ctx context.Context, req *GetCustomerStandingRequest) (*CustomerStandingResponse, error) {
	return srv.(CustomerServiceServer).GetCustomerStanding(ctx, req)
})

var CustomerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.sales.v1.CustomerService",
	HandlerType: (*CustomerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCustomer",
			Handler:    _CustomerService_CreateCustomer_Handler,
		},
		{
			MethodName: "GetCustomer",
			Handler:    _CustomerService_GetCustomer_Handler,
		},
		{
			MethodName: "ListCustomers",
			Handler:    _CustomerService_ListCustomers_Handler,
		},
		{
			MethodName: "UpdateCustomer",
			Handler:    _CustomerService_UpdateCustomer_Handler,
		},
		{
			MethodName: "GetNextCustomerCode",
			Handler:    _CustomerService_GetNextCustomerCode_Handler,
		},
		{
			MethodName: "RecordPayment",
			Handler:    _CustomerService_RecordPayment_Handler,
		},
		{
			MethodName: "GetCustomerStanding",
			Handler:    _CustomerService_GetCustomerStanding_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/sales/v1/customer.proto",
}

type CustomerServiceClient interface {
	CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	GetCustomer(ctx context.Context, in *GetCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	ListCustomers(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	GetNextCustomerCode(ctx context.Context, in *GetNextCodeRequest, opts ...grpc.CallOption) (*NextCodeResponse, error)
	RecordPayment(ctx context.Context, in *RecordPaymentRequest, opts ...grpc.CallOption) (*CreditTransactionResponse, error)
	GetCustomerStanding(ctx context.Context, in *GetCustomerStandingRequest, opts ...grpc.CallOption) (*CustomerStandingResponse, error)
}

type customerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCustomerServiceClient(cc grpc.ClientConnInterface) CustomerServiceClient {
	return &customerServiceClient{cc: cc}
}

func (c *customerServiceClient) CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, CustomerService_CreateCustomer_FullMethodName, in, opts)
}

func (c *customerServiceClient) GetCustomer(ctx context.Context, in *GetCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, CustomerService_GetCustomer_FullMethodName, in, opts)
}

func (c *customerServiceClient) ListCustomers(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*ListCustomersResponse, error) {
	return invoke[ListCustomersResponse](ctx, c.cc, CustomerService_ListCustomers_FullMethodName, in, opts)
}

func (c *customerServiceClient) UpdateCustomer(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, CustomerService_UpdateCustomer_FullMethodName, in, opts)
}

func (c *customerServiceClient) GetNextCustomerCode(ctx context.Context, in *GetNextCodeRequest, opts ...grpc.CallOption) (*NextCodeResponse, error) {
	return invoke[NextCodeResponse](ctx, c.cc, CustomerService_GetNextCustomerCode_FullMethodName, in, opts)
}

func (c *customerServiceClient) RecordPayment(ctx context.Context, in *RecordPaymentRequest, opts ...grpc.CallOption) (*CreditTransactionResponse, error) {
	return invoke[CreditTransactionResponse](ctx, c.cc, CustomerService_RecordPayment_FullMethodName, in, opts)
}

func (c *customerServiceClient) GetCustomerStanding(ctx context.Context, in *GetCustomerStandingRequest, opts ...grpc.CallOption) (*CustomerStandingResponse, error) {
	return invoke[CustomerStandingResponse](ctx, c.cc, CustomerService_GetCustomerStanding_FullMethodName, in, opts)
}
