package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/dto"
	"github.com/aksara-labs/gradewise-api/internal/models"
	"github.com/aksara-labs/gradewise-api/internal/observability"
	"github.com/aksara-labs/gradewise-api/internal/repository"
	"github.com/aksara-labs/gradewise-api/internal/resolution"
)

// ErrGradingGroupNotFound indicates the grading group was not located.
var ErrGradingGroupNotFound = errors.New("grading group not found")

// GradeResolutionService is the external caller of the resolution engine: it
// fetches the event streams for a (student, context) pair, builds the
// engine's lookup maps once per call, and returns the resolved grade.
type GradeResolutionService interface {
	ResolveForAssessment(ctx context.Context, classAssessmentID, studentID uint) (dto.ResolvedGradeResponse, error)
	ResolveForGroup(ctx context.Context, groupID, studentID uint) (dto.ResolvedGradeResponse, error)
	ResolveRoster(ctx context.Context, groupID uint) (dto.RosterResponse, error)
}

type gradeResolutionService struct {
	submissions repository.SubmissionRepository
	sessions    repository.GradingSessionRepository
	items       repository.GradeItemRepository
	rubrics     repository.RubricItemRepository
	groups      repository.GradingGroupRepository
	classifier  ContextClassifier
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewGradeResolutionService constructs the resolution service. The cache
// client may be nil; resolution then always recomputes.
func NewGradeResolutionService(
	submissions repository.SubmissionRepository,
	sessions repository.GradingSessionRepository,
	items repository.GradeItemRepository,
	rubrics repository.RubricItemRepository,
	groups repository.GradingGroupRepository,
	classifier ContextClassifier,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) GradeResolutionService {
	return &gradeResolutionService{
		submissions: submissions,
		sessions:    sessions,
		items:       items,
		rubrics:     rubrics,
		groups:      groups,
		classifier:  classifier,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger.With().Str("component", "grade_resolution_service").Logger(),
	}
}

func (s *gradeResolutionService) ResolveForAssessment(ctx context.Context, classAssessmentID, studentID uint) (dto.ResolvedGradeResponse, error) {
	tracer := otel.Tracer("github.com/aksara-labs/gradewise-api/internal/service/grade_resolution")
	ctx, span := tracer.Start(ctx, "resolution.assessment")
	span.SetAttributes(
		attribute.Int64("resolution.class_assessment_id", int64(classAssessmentID)),
		attribute.Int64("resolution.student_id", int64(studentID)),
	)
	defer span.End()

	cacheKey := fmt.Sprintf("resolve:assessment:%d:student:%d", classAssessmentID, studentID)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	assessmentContext, assessment, err := s.classifier.ClassifyAssessment(ctx, classAssessmentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assessment_lookup_failed")
		return dto.ResolvedGradeResponse{}, err
	}

	filter := repository.SubmissionFilter{StudentID: &studentID, ClassAssessmentID: &classAssessmentID}
	response, err := s.resolveOne(ctx, studentID, filter, assessment.AssessmentTemplateID, assessmentContext)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolution_failed")
		return dto.ResolvedGradeResponse{}, err
	}

	span.SetAttributes(attribute.String("resolution.status", response.Status))
	s.cacheSet(ctx, cacheKey, response)
	return response, nil
}

func (s *gradeResolutionService) ResolveForGroup(ctx context.Context, groupID, studentID uint) (dto.ResolvedGradeResponse, error) {
	tracer := otel.Tracer("github.com/aksara-labs/gradewise-api/internal/service/grade_resolution")
	ctx, span := tracer.Start(ctx, "resolution.group")
	span.SetAttributes(
		attribute.Int64("resolution.grading_group_id", int64(groupID)),
		attribute.Int64("resolution.student_id", int64(studentID)),
	)
	defer span.End()

	cacheKey := fmt.Sprintf("resolve:group:%d:student:%d", groupID, studentID)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	group, groupIDs, err := s.expandGroup(ctx, groupID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "group_lookup_failed")
		return dto.ResolvedGradeResponse{}, err
	}

	assessmentContext, err := s.classifier.ClassifyGroup(ctx, group)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "group_classification_failed")
		return dto.ResolvedGradeResponse{}, err
	}

	filter := repository.SubmissionFilter{StudentID: &studentID, GradingGroupIDs: groupIDs}
	response, err := s.resolveOne(ctx, studentID, filter, group.AssessmentTemplateID, assessmentContext)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolution_failed")
		return dto.ResolvedGradeResponse{}, err
	}

	span.SetAttributes(attribute.String("resolution.status", response.Status))
	s.cacheSet(ctx, cacheKey, response)
	return response, nil
}

func (s *gradeResolutionService) ResolveRoster(ctx context.Context, groupID uint) (dto.RosterResponse, error) {
	tracer := otel.Tracer("github.com/aksara-labs/gradewise-api/internal/service/grade_resolution")
	ctx, span := tracer.Start(ctx, "resolution.roster")
	span.SetAttributes(attribute.Int64("resolution.grading_group_id", int64(groupID)))
	defer span.End()

	start := time.Now()

	group, groupIDs, err := s.expandGroup(ctx, groupID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "group_lookup_failed")
		return dto.RosterResponse{}, err
	}

	assessmentContext, err := s.classifier.ClassifyGroup(ctx, group)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "group_classification_failed")
		return dto.RosterResponse{}, err
	}

	filter := repository.SubmissionFilter{GradingGroupIDs: groupIDs}
	submissions, err := s.submissions.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submission_fetch_failed")
		return dto.RosterResponse{}, err
	}

	input, err := s.buildInput(ctx, submissions, group.AssessmentTemplateID, assessmentContext)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "input_build_failed")
		return dto.RosterResponse{}, err
	}

	byStudent := make(map[uint][]models.Submission)
	students := make([]uint, 0)
	for _, submission := range submissions {
		if _, seen := byStudent[submission.StudentID]; !seen {
			students = append(students, submission.StudentID)
		}
		byStudent[submission.StudentID] = append(byStudent[submission.StudentID], submission)
	}

	roster := dto.RosterResponse{GradingGroupID: group.ID, Rows: make([]dto.ResolvedGradeResponse, 0, len(students))}
	for _, studentID := range students {
		studentInput := input
		studentInput.SubmissionsForStudent = byStudent[studentID]

		result := resolution.Resolve(studentInput)
		observability.Resolutions().WithLabelValues(result.Status).Inc()

		roster.Rows = append(roster.Rows, dto.NewResolvedGradeResponse(studentID, result))
		switch result.Status {
		case resolution.StatusGraded:
			roster.Summary.Graded++
		case resolution.StatusUngraded:
			roster.Summary.Ungraded++
		default:
			roster.Summary.NoSubmission++
		}
	}

	observability.ResolutionLatency().WithLabelValues("roster").Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("resolution.roster_size", len(roster.Rows)))
	return roster, nil
}

// resolveOne fetches the event streams for one student and runs the engine.
func (s *gradeResolutionService) resolveOne(ctx context.Context, studentID uint, filter repository.SubmissionFilter, templateID uint, assessmentContext models.AssessmentContext) (dto.ResolvedGradeResponse, error) {
	start := time.Now()

	submissions, err := s.submissions.List(ctx, filter)
	if err != nil {
		return dto.ResolvedGradeResponse{}, err
	}

	input, err := s.buildInput(ctx, submissions, templateID, assessmentContext)
	if err != nil {
		return dto.ResolvedGradeResponse{}, err
	}
	input.SubmissionsForStudent = submissions

	result := resolution.Resolve(input)
	observability.Resolutions().WithLabelValues(result.Status).Inc()
	observability.ResolutionLatency().WithLabelValues("single").Observe(time.Since(start).Seconds())

	return dto.NewResolvedGradeResponse(studentID, result), nil
}

// buildInput batches the session, item, and rubric lookups for a submission
// set into the engine's prebuilt maps: one query per entity kind, one map
// construction per batch.
func (s *gradeResolutionService) buildInput(ctx context.Context, submissions []models.Submission, templateID uint, assessmentContext models.AssessmentContext) (resolution.Input, error) {
	submissionIDs := make([]uint, 0, len(submissions))
	for _, submission := range submissions {
		submissionIDs = append(submissionIDs, submission.ID)
	}

	sessions, err := s.sessions.ListBySubmissionIDs(ctx, submissionIDs)
	if err != nil {
		return resolution.Input{}, err
	}

	sessionIDs := make([]uint, 0, len(sessions))
	sessionsBySubmission := make(map[uint][]models.GradingSession, len(submissions))
	for _, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID)
		sessionsBySubmission[session.SubmissionID] = append(sessionsBySubmission[session.SubmissionID], session)
	}

	items, err := s.items.ListBySessionIDs(ctx, sessionIDs)
	if err != nil {
		return resolution.Input{}, err
	}

	itemsBySession := make(map[uint][]models.GradeItem, len(sessions))
	for _, item := range items {
		itemsBySession[item.GradingSessionID] = append(itemsBySession[item.GradingSessionID], item)
	}

	rubricMax, err := s.rubrics.MaxScoresByTemplate(ctx, templateID)
	if err != nil {
		return resolution.Input{}, err
	}

	return resolution.Input{
		SessionsBySubmissionID: sessionsBySubmission,
		ItemsBySessionID:       itemsBySession,
		RubricMaxByItemID:      rubricMax,
		Context:                assessmentContext,
	}, nil
}

// expandGroup loads a grading group and the IDs of every historical
// duplicate sharing its (semester, template, lecturer) key, so submissions
// attached to superseded rows are not lost.
func (s *gradeResolutionService) expandGroup(ctx context.Context, groupID uint) (models.GradingGroup, []uint, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GradingGroup{}, nil, ErrGradingGroupNotFound
		}
		return models.GradingGroup{}, nil, err
	}

	siblings, err := s.groups.List(ctx, repository.GradingGroupFilter{
		SemesterCode:         &group.SemesterCode,
		AssessmentTemplateID: &group.AssessmentTemplateID,
		LecturerID:           &group.LecturerID,
	})
	if err != nil {
		return models.GradingGroup{}, nil, err
	}

	return group, resolution.ExpandGroups(siblings, resolution.KeyForGroup(group)), nil
}

func (s *gradeResolutionService) cacheGet(ctx context.Context, key string) (dto.ResolvedGradeResponse, bool) {
	if s.cache == nil {
		return dto.ResolvedGradeResponse{}, false
	}

	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read resolution cache")
		}
		observability.ResolutionCache().WithLabelValues("miss").Inc()
		return dto.ResolvedGradeResponse{}, false
	}

	var response dto.ResolvedGradeResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		observability.ResolutionCache().WithLabelValues("miss").Inc()
		return dto.ResolvedGradeResponse{}, false
	}

	observability.ResolutionCache().WithLabelValues("hit").Inc()
	return response, true
}

func (s *gradeResolutionService) cacheSet(ctx context.Context, key string, response dto.ResolvedGradeResponse) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to store resolution cache")
	}
}
