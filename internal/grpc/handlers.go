package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/godilite/mbti-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second

	defaultHistoryLimit = 20
	// cachedHistoryLimit is how many results are fetched and cached per user; requests slice from it.
	cachedHistoryLimit = 100
)

type CacheKeyType string

const (
	cacheKeyResult        CacheKeyType = "grpc:assessment_result"
	cacheKeyResultsByUser CacheKeyType = "grpc:results_by_user"
)

type GRPCHandlers struct {
	pb.UnimplementedAssessmentServer
	assessments AssessmentService
	cache       Cacher
	validate    *validator.Validate
	logger      *zap.Logger
	sfGroup     singleflight.Group
	cacheTTL    time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(assessments AssessmentService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if assessments == nil {
		panic("nil AssessmentService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		assessments: assessments,
		cache:       cache,
		validate:    newValidator(),
		logger:      logger.Named("grpc-handler"),
		cacheTTL:    ttl,
	}
}

func cacheKey(prefix CacheKeyType, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		s.logger.Info("session not found", zap.String("op", op))
		return status.Error(codes.NotFound, "assessment session not found or expired")
	case errors.Is(err, service.ErrResultNotFound):
		s.logger.Info("result not found", zap.String("op", op))
		return status.Error(codes.NotFound, "assessment result not found")
	case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrUnknownType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) ListQuestions(ctx context.Context, req *pb.ListQuestionsRequest) (*pb.ListQuestionsResponse, error) {
	questions := s.assessments.Questions()

	out := make([]*pb.Question, len(questions))
	for i, q := range questions {
		out[i] = &pb.Question{
			ID:        q.ID,
			Text:      q.Text,
			Dimension: string(q.Dimension),
		}
	}
	return &pb.ListQuestionsResponse{Questions: out}, nil
}

func (s *GRPCHandlers) StartAssessment(ctx context.Context, req *pb.StartAssessmentRequest) (*pb.StartAssessmentResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	info, err := s.assessments.StartAssessment(ctx, req.UserID)
	if err != nil {
		return nil, s.handleError(ctx, "StartAssessment", err)
	}

	return &pb.StartAssessmentResponse{
		SessionID:      info.ID,
		StartedAt:      info.StartedAt,
		TotalQuestions: info.TotalQuestions,
	}, nil
}

func (s *GRPCHandlers) SubmitAnswer(ctx context.Context, req *pb.SubmitAnswerRequest) (*pb.SubmitAnswerResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	progress, err := s.assessments.SubmitAnswer(ctx, req.SessionID, req.QuestionID, req.Value)
	if err != nil {
		return nil, s.handleError(ctx, "SubmitAnswer", err)
	}
	return &pb.SubmitAnswerResponse{Progress: progress}, nil
}

func (s *GRPCHandlers) GetAnswers(ctx context.Context, req *pb.SessionRequest) (*pb.GetAnswersResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	answers, err := s.assessments.Answers(ctx, req.SessionID)
	if err != nil {
		return nil, s.handleError(ctx, "GetAnswers", err)
	}

	out := make([]*pb.Answer, len(answers))
	for i, a := range answers {
		out[i] = &pb.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			AnsweredAt: a.AnsweredAt,
		}
	}
	return &pb.GetAnswersResponse{Answers: out}, nil
}

func (s *GRPCHandlers) GetProgress(ctx context.Context, req *pb.SessionRequest) (*pb.GetProgressResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	progress, err := s.assessments.Progress(ctx, req.SessionID)
	if err != nil {
		return nil, s.handleError(ctx, "GetProgress", err)
	}
	return &pb.GetProgressResponse{Progress: progress}, nil
}

func (s *GRPCHandlers) CompleteAssessment(ctx context.Context, req *pb.SessionRequest) (*pb.CompleteAssessmentResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.assessments.CompleteAssessment(ctx, req.SessionID)
	if err != nil {
		return nil, s.handleError(ctx, "CompleteAssessment", err)
	}

	if result.UserID != "" {
		invalidate(ctx, s.cache, s.logger, cacheKey(cacheKeyResultsByUser, result.UserID))
	}

	return &pb.CompleteAssessmentResponse{Result: toProtoResult(result)}, nil
}

func (s *GRPCHandlers) ResetAssessment(ctx context.Context, req *pb.SessionRequest) (*pb.ResetAssessmentResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if err := s.assessments.ResetAssessment(ctx, req.SessionID); err != nil {
		return nil, s.handleError(ctx, "ResetAssessment", err)
	}
	return &pb.ResetAssessmentResponse{}, nil
}

func (s *GRPCHandlers) GetResult(ctx context.Context, req *pb.GetResultRequest) (*pb.GetResultResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := cacheKey(cacheKeyResult, req.ResultID)
	result, err := FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.AssessmentResult, error) {
		return s.assessments.GetResult(fetchCtx, req.ResultID)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetResult", err)
	}

	return &pb.GetResultResponse{Result: toProtoResult(result)}, nil
}

func (s *GRPCHandlers) ListResults(ctx context.Context, req *pb.ListResultsRequest) (*pb.ListResultsResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := cacheKey(cacheKeyResultsByUser, req.UserID)
	results, err := FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.AssessmentResult, error) {
		return s.assessments.ListResults(fetchCtx, req.UserID, cachedHistoryLimit)
	}, WithRefreshAhead())
	if err != nil {
		return nil, s.handleError(ctx, "ListResults", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]*pb.AssessmentResult, len(results))
	for i, r := range results {
		out[i] = toProtoResult(r)
	}
	return &pb.ListResultsResponse{Results: out}, nil
}

func (s *GRPCHandlers) GetTypeProfile(ctx context.Context, req *pb.GetTypeProfileRequest) (*pb.TypeProfileResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	profile, err := s.assessments.TypeProfile(mbti.TypeCode(strings.ToUpper(req.TypeCode)))
	if err != nil {
		return nil, s.handleError(ctx, "GetTypeProfile", err)
	}

	return &pb.TypeProfileResponse{
		TypeCode:        string(profile.TypeCode),
		Description:     profile.Description,
		Strengths:       profile.Strengths,
		Challenges:      profile.Challenges,
		Recommendations: profile.Recommendations,
	}, nil
}

func toProtoResult(r service.AssessmentResult) *pb.AssessmentResult {
	return &pb.AssessmentResult{
		ID:              r.ID,
		SessionID:       r.SessionID,
		UserID:          r.UserID,
		TypeCode:        string(r.TypeCode),
		Scores:          dimensionMap(r.Score),
		Percentages:     dimensionMap(mbti.Score(r.Percentage)),
		Description:     r.Description,
		Strengths:       r.Strengths,
		Challenges:      r.Challenges,
		Recommendations: r.Recommendations,
		CompletedAt:     r.CompletedAt,
	}
}

func dimensionMap(s mbti.Score) map[string]int {
	out := make(map[string]int, 8)
	for _, d := range mbti.Dimensions() {
		out[string(d)] = s.Get(d)
	}
	return out
}
