package v1

import (
	"context"

	"github.com/godilite/mbti-server/pkg/grpc/codec"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "mbti.v1.Assessment"

const (
	Assessment_ListQuestions_FullMethodName      = "/mbti.v1.Assessment/ListQuestions"
	Assessment_StartAssessment_FullMethodName    = "/mbti.v1.Assessment/StartAssessment"
	Assessment_SubmitAnswer_FullMethodName       = "/mbti.v1.Assessment/SubmitAnswer"
	Assessment_GetAnswers_FullMethodName         = "/mbti.v1.Assessment/GetAnswers"
	Assessment_GetProgress_FullMethodName        = "/mbti.v1.Assessment/GetProgress"
	Assessment_CompleteAssessment_FullMethodName = "/mbti.v1.Assessment/CompleteAssessment"
	Assessment_ResetAssessment_FullMethodName    = "/mbti.v1.Assessment/ResetAssessment"
	Assessment_GetResult_FullMethodName          = "/mbti.v1.Assessment/GetResult"
	Assessment_ListResults_FullMethodName        = "/mbti.v1.Assessment/ListResults"
	Assessment_GetTypeProfile_FullMethodName     = "/mbti.v1.Assessment/GetTypeProfile"
)

// AssessmentServer is the server API for the Assessment service.
// Implementations must embed UnimplementedAssessmentServer.
type AssessmentServer interface {
	ListQuestions(context.Context, *ListQuestionsRequest) (*ListQuestionsResponse, error)
	StartAssessment(context.Context, *StartAssessmentRequest) (*StartAssessmentResponse, error)
	SubmitAnswer(context.Context, *SubmitAnswerRequest) (*SubmitAnswerResponse, error)
	GetAnswers(context.Context, *SessionRequest) (*GetAnswersResponse, error)
	GetProgress(context.Context, *SessionRequest) (*GetProgressResponse, error)
	CompleteAssessment(context.Context, *SessionRequest) (*CompleteAssessmentResponse, error)
	ResetAssessment(context.Context, *SessionRequest) (*ResetAssessmentResponse, error)
	GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error)
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	GetTypeProfile(context.Context, *GetTypeProfileRequest) (*TypeProfileResponse, error)
	mustEmbedUnimplementedAssessmentServer()
}

type UnimplementedAssessmentServer struct{}

func (UnimplementedAssessmentServer) ListQuestions(context.Context, *ListQuestionsRequest) (*ListQuestionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListQuestions not implemented")
}
func (UnimplementedAssessmentServer) StartAssessment(context.Context, *StartAssessmentRequest) (*StartAssessmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartAssessment not implemented")
}
func (UnimplementedAssessmentServer) SubmitAnswer(context.Context, *SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitAnswer not implemented")
}
func (UnimplementedAssessmentServer) GetAnswers(context.Context, *SessionRequest) (*GetAnswersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAnswers not implemented")
}
func (UnimplementedAssessmentServer) GetProgress(context.Context, *SessionRequest) (*GetProgressResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProgress not implemented")
}
func (UnimplementedAssessmentServer) CompleteAssessment(context.Context, *SessionRequest) (*CompleteAssessmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteAssessment not implemented")
}
func (UnimplementedAssessmentServer) ResetAssessment(context.Context, *SessionRequest) (*ResetAssessmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetAssessment not implemented")
}
func (UnimplementedAssessmentServer) GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetResult not implemented")
}
func (UnimplementedAssessmentServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedAssessmentServer) GetTypeProfile(context.Context, *GetTypeProfileRequest) (*TypeProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTypeProfile not implemented")
}
func (UnimplementedAssessmentServer) mustEmbedUnimplementedAssessmentServer() {}

// RegisterAssessmentServer registers srv on s.
func RegisterAssessmentServer(s grpc.ServiceRegistrar, srv AssessmentServer) {
	s.RegisterService(&Assessment_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(AssessmentServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AssessmentServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AssessmentServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Assessment_ServiceDesc is the grpc.ServiceDesc for the Assessment service.
var Assessment_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AssessmentServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListQuestions", Handler: unaryHandler(Assessment_ListQuestions_FullMethodName, AssessmentServer.ListQuestions)},
		{MethodName: "StartAssessment", Handler: unaryHandler(Assessment_StartAssessment_FullMethodName, AssessmentServer.StartAssessment)},
		{MethodName: "SubmitAnswer", Handler: unaryHandler(Assessment_SubmitAnswer_FullMethodName, AssessmentServer.SubmitAnswer)},
		{MethodName: "GetAnswers", Handler: unaryHandler(Assessment_GetAnswers_FullMethodName, AssessmentServer.GetAnswers)},
		{MethodName: "GetProgress", Handler: unaryHandler(Assessment_GetProgress_FullMethodName, AssessmentServer.GetProgress)},
		{MethodName: "CompleteAssessment", Handler: unaryHandler(Assessment_CompleteAssessment_FullMethodName, AssessmentServer.CompleteAssessment)},
		{MethodName: "ResetAssessment", Handler: unaryHandler(Assessment_ResetAssessment_FullMethodName, AssessmentServer.ResetAssessment)},
		{MethodName: "GetResult", Handler: unaryHandler(Assessment_GetResult_FullMethodName, AssessmentServer.GetResult)},
		{MethodName: "ListResults", Handler: unaryHandler(Assessment_ListResults_FullMethodName, AssessmentServer.ListResults)},
		{MethodName: "GetTypeProfile", Handler: unaryHandler(Assessment_GetTypeProfile_FullMethodName, AssessmentServer.GetTypeProfile)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mbti/v1/assessment",
}

// AssessmentClient is the client API for the Assessment service.
type AssessmentClient interface {
	ListQuestions(ctx context.Context, in *ListQuestionsRequest, opts ...grpc.CallOption) (*ListQuestionsResponse, error)
	StartAssessment(ctx context.Context, in *StartAssessmentRequest, opts ...grpc.CallOption) (*StartAssessmentResponse, error)
	SubmitAnswer(ctx context.Context, in *SubmitAnswerRequest, opts ...grpc.CallOption) (*SubmitAnswerResponse, error)
	GetAnswers(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*GetAnswersResponse, error)
	GetProgress(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*GetProgressResponse, error)
	CompleteAssessment(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CompleteAssessmentResponse, error)
	ResetAssessment(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ResetAssessmentResponse, error)
	GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error)
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error)
	GetTypeProfile(ctx context.Context, in *GetTypeProfileRequest, opts ...grpc.CallOption) (*TypeProfileResponse, error)
}

type assessmentClient struct {
	cc grpc.ClientConnInterface
}

// NewAssessmentClient returns a client that sends every call with the JSON content subtype.
func NewAssessmentClient(cc grpc.ClientConnInterface) AssessmentClient {
	return &assessmentClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assessmentClient) ListQuestions(ctx context.Context, in *ListQuestionsRequest, opts ...grpc.CallOption) (*ListQuestionsResponse, error) {
	return invoke[ListQuestionsResponse](ctx, c.cc, Assessment_ListQuestions_FullMethodName, in, opts)
}

func (c *assessmentClient) StartAssessment(ctx context.Context, in *StartAssessmentRequest, opts ...grpc.CallOption) (*StartAssessmentResponse, error) {
	return invoke[StartAssessmentResponse](ctx, c.cc, Assessment_StartAssessment_FullMethodName, in, opts)
}

func (c *assessmentClient) SubmitAnswer(ctx context.Context, in *SubmitAnswerRequest, opts ...grpc.CallOption) (*SubmitAnswerResponse, error) {
	return invoke[SubmitAnswerResponse](ctx, c.cc, Assessment_SubmitAnswer_FullMethodName, in, opts)
}

func (c *assessmentClient) GetAnswers(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*GetAnswersResponse, error) {
	return invoke[GetAnswersResponse](ctx, c.cc, Assessment_GetAnswers_FullMethodName, in, opts)
}

func (c *assessmentClient) GetProgress(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*GetProgressResponse, error) {
	return invoke[GetProgressResponse](ctx, c.cc, Assessment_GetProgress_FullMethodName, in, opts)
}

func (c *assessmentClient) CompleteAssessment(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CompleteAssessmentResponse, error) {
	return invoke[CompleteAssessmentResponse](ctx, c.cc, Assessment_CompleteAssessment_FullMethodName, in, opts)
}

func (c *assessmentClient) ResetAssessment(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ResetAssessmentResponse, error) {
	return invoke[ResetAssessmentResponse](ctx, c.cc, Assessment_ResetAssessment_FullMethodName, in, opts)
}

func (c *assessmentClient) GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error) {
	return invoke[GetResultResponse](ctx, c.cc, Assessment_GetResult_FullMethodName, in, opts)
}

func (c *assessmentClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error) {
	return invoke[ListResultsResponse](ctx, c.cc, Assessment_ListResults_FullMethodName, in, opts)
}

func (c *assessmentClient) GetTypeProfile(ctx context.Context, in *GetTypeProfileRequest, opts ...grpc.CallOption) (*TypeProfileResponse, error) {
	return invoke[TypeProfileResponse](ctx, c.cc, Assessment_GetTypeProfile_FullMethodName, in, opts)
}
