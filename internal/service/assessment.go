package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/godilite/mbti-server/internal/repository"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second

	defaultSessionTTL   = 2 * time.Hour
	defaultMaxSessions  = 10000
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrSessionNotFound = errors.New("assessment session not found")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrResultNotFound  = errors.New("assessment result not found")
	ErrUnknownType     = errors.New("unknown type code")
	ErrStorageFailure  = errors.New("storage failure")
)

type sessionEntry struct {
	info       SessionInfo
	session    *mbti.Session
	lastActive time.Time
}

// AssessmentService runs assessment sessions and persists their results.
// Sessions are held in memory, bounded by count and idle time.
type AssessmentService struct {
	storage  ResultRepository
	logger   *zap.Logger
	metrics  *Metrics
	tieBreak mbti.TieBreak
	ttl      time.Duration
	now      func() time.Time
	newID    func() string

	mu       sync.Mutex
	sessions *lru.Cache[string, *sessionEntry]
}

type Option func(*AssessmentService)

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *AssessmentService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxSessions bounds the number of live sessions; the least recently used one is dropped first.
func WithMaxSessions(n int) Option {
	return func(s *AssessmentService) {
		if n > 0 {
			s.sessions, _ = lru.New[string, *sessionEntry](n)
		}
	}
}

func WithTieBreak(tb mbti.TieBreak) Option {
	return func(s *AssessmentService) { s.tieBreak = tb }
}

func WithMetrics(m *Metrics) Option {
	return func(s *AssessmentService) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *AssessmentService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *AssessmentService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewAssessmentService creates a new AssessmentService instance.
func NewAssessmentService(storage ResultRepository, logger *zap.Logger, opts ...Option) *AssessmentService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	sessions, _ := lru.New[string, *sessionEntry](defaultMaxSessions)
	s := &AssessmentService{
		storage:  storage,
		logger:   logger,
		tieBreak: mbti.TieBreakSecond,
		ttl:      defaultSessionTTL,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Questions returns the question bank every session is scored against.
func (s *AssessmentService) Questions() []mbti.Question {
	return mbti.Questions()
}

// StartAssessment opens a new empty session, optionally owned by userID.
func (s *AssessmentService) StartAssessment(ctx context.Context, userID string) (SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return SessionInfo{}, err
	}

	now := s.now()
	session := mbti.NewSession(mbti.WithClock(s.now), mbti.WithTieBreak(s.tieBreak))
	info := SessionInfo{
		ID:             s.newID(),
		UserID:         userID,
		StartedAt:      now,
		TotalQuestions: len(session.Questions()),
	}

	s.mu.Lock()
	evicted := s.sessions.Add(info.ID, &sessionEntry{info: info, session: session, lastActive: now})
	s.mu.Unlock()

	if evicted {
		s.logger.Warn("session capacity reached, evicted least recently used session")
	}
	s.metrics.observeSessionStarted()
	s.logger.Info("assessment started",
		zap.String("session_id", info.ID),
		zap.String("user_id", userID))

	return info, nil
}

// lookup returns a live session and marks it active. Callers must hold s.mu.
func (s *AssessmentService) lookup(sessionID string) (*sessionEntry, error) {
	entry, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if now.Sub(entry.lastActive) > s.ttl {
		s.sessions.Remove(sessionID)
		s.logger.Debug("session expired", zap.String("session_id", sessionID))
		return nil, ErrSessionNotFound
	}
	entry.lastActive = now
	return entry, nil
}

// SubmitAnswer records an answer and returns the new progress percentage.
// The value is stored as given; range checks belong to the caller.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, sessionID string, questionID, value int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return 0, err
	}
	if !hasQuestion(entry.session, questionID) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}

	entry.session.AddAnswer(questionID, value)
	s.metrics.observeAnswer()

	return entry.session.Progress(), nil
}

func hasQuestion(session *mbti.Session, id int) bool {
	for _, q := range session.Questions() {
		if q.ID == id {
			return true
		}
	}
	return false
}

func (s *AssessmentService) Answers(ctx context.Context, sessionID string) ([]mbti.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return entry.session.Answers(), nil
}

func (s *AssessmentService) Progress(ctx context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return 0, err
	}
	return entry.session.Progress(), nil
}

// ResetAssessment clears the session's answers. Persisted results are untouched.
func (s *AssessmentService) ResetAssessment(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	entry.session.Reset()

	s.logger.Info("assessment reset", zap.String("session_id", sessionID))
	return nil
}

// CompleteAssessment scores the session, persists the result and returns it.
// Storage errors are returned without retry; the session stays open so the caller may try again.
func (s *AssessmentService) CompleteAssessment(ctx context.Context, sessionID string) (AssessmentResult, error) {
	s.mu.Lock()
	entry, err := s.lookup(sessionID)
	if err != nil {
		s.mu.Unlock()
		return AssessmentResult{}, err
	}
	result := entry.session.Complete()
	answered := len(entry.session.Answers())
	info := entry.info
	s.mu.Unlock()

	out := AssessmentResult{
		ID:        s.newID(),
		SessionID: info.ID,
		UserID:    info.UserID,
		Result:    result,
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.SaveResult(dbCtx, toModel(out)); err != nil {
		s.metrics.observeStorageFailure()
		s.logger.Error("failed to persist assessment result",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return AssessmentResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.metrics.observeCompleted(result.TypeCode)
	s.logger.Info("assessment completed",
		zap.String("session_id", sessionID),
		zap.String("result_id", out.ID),
		zap.String("type_code", string(result.TypeCode)),
		zap.Int("answered", answered),
		zap.Int("total_questions", info.TotalQuestions))

	return out, nil
}

// GetResult loads a persisted result by id.
func (s *AssessmentService) GetResult(ctx context.Context, resultID string) (AssessmentResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	m, err := s.storage.GetResult(dbCtx, resultID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AssessmentResult{}, ErrResultNotFound
		}
		return AssessmentResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return fromModel(m), nil
}

// ListResults returns a user's most recent results, newest first.
func (s *AssessmentService) ListResults(ctx context.Context, userID string, limit int) ([]AssessmentResult, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.ListResultsByUser(dbCtx, userID, limit)
	if err != nil {
		s.logger.Error("failed to list results", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	out := make([]AssessmentResult, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromModel(m))
	}
	return out, nil
}

// TypeProfile returns the static description for one of the 16 type codes.
func (s *AssessmentService) TypeProfile(code mbti.TypeCode) (mbti.TypeProfile, error) {
	if !code.Valid() {
		return mbti.TypeProfile{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
	}
	return mbti.ProfileFor(code), nil
}
