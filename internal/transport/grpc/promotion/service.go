package promotion

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "promotion.v1.PromotionCatalogService"

// Method names of ServiceName.
const (
	MethodCreatePromotion         = "CreatePromotion"
	MethodUpdatePromotion         = "UpdatePromotion"
	MethodDeletePromotion         = "DeletePromotion"
	MethodGetPromotion            = "GetPromotion"
	MethodFindPromotionsByProduct = "FindPromotionsByProduct"
)

// CatalogServer is the server API of ServiceName.
type CatalogServer interface {
	CreatePromotion(context.Context, *CreatePromotionRequest) (*CreatePromotionReply, error)
	UpdatePromotion(context.Context, *UpdatePromotionRequest) (*UpdatePromotionReply, error)
	DeletePromotion(context.Context, *DeletePromotionRequest) (*DeletePromotionReply, error)
	GetPromotion(context.Context, *GetPromotionRequest) (*GetPromotionReply, error)
	FindPromotionsByProduct(context.Context, *FindPromotionsByProductRequest) (*FindPromotionsByProductReply, error)
}

// ServiceDesc describes ServiceName for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreatePromotion, CatalogServer.CreatePromotion),
		unary(MethodUpdatePromotion, CatalogServer.UpdatePromotion),
		unary(MethodDeletePromotion, CatalogServer.DeletePromotion),
		unary(MethodGetPromotion, CatalogServer.GetPromotion),
		unary(MethodFindPromotionsByProduct, CatalogServer.FindPromotionsByProduct),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Reply any](method string, call func(CatalogServer, context.Context, *Req) (*Reply, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
