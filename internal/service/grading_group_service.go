package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aksara-labs/gradewise-api/internal/dto"
	"github.com/aksara-labs/gradewise-api/internal/repository"
	"github.com/aksara-labs/gradewise-api/internal/resolution"
)

// GradingGroupService exposes the canonical view over duplicated grading
// group rows: one logical teaching assignment per (semester, template,
// lecturer), with submission reach across every historical duplicate.
type GradingGroupService interface {
	ListCanonical(ctx context.Context, semesterCode string) ([]dto.CanonicalGroupResponse, error)
}

type gradingGroupService struct {
	groups      repository.GradingGroupRepository
	submissions repository.SubmissionRepository
	logger      zerolog.Logger
}

// NewGradingGroupService constructs the service.
func NewGradingGroupService(groups repository.GradingGroupRepository, submissions repository.SubmissionRepository, logger zerolog.Logger) GradingGroupService {
	return &gradingGroupService{
		groups:      groups,
		submissions: submissions,
		logger:      logger.With().Str("component", "grading_group_service").Logger(),
	}
}

func (s *gradingGroupService) ListCanonical(ctx context.Context, semesterCode string) ([]dto.CanonicalGroupResponse, error) {
	tracer := otel.Tracer("github.com/aksara-labs/gradewise-api/internal/service/grading_group")
	ctx, span := tracer.Start(ctx, "grading_group.list_canonical")
	span.SetAttributes(attribute.String("grading_group.semester", semesterCode))
	defer span.End()

	filter := repository.GradingGroupFilter{}
	if semesterCode != "" {
		filter.SemesterCode = &semesterCode
	}

	groups, err := s.groups.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "group_fetch_failed")
		return nil, err
	}

	canonical := resolution.CanonicalizeGroups(groups)

	responses := make([]dto.CanonicalGroupResponse, 0, len(canonical))
	for key, group := range canonical {
		allIDs := resolution.ExpandGroups(groups, key)

		// Unique students across all duplicates of the key, so a reset
		// does not erase the teaching history.
		students, err := s.submissions.StudentIDs(ctx, repository.SubmissionFilter{GradingGroupIDs: allIDs})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "student_count_failed")
			return nil, err
		}

		responses = append(responses, dto.NewCanonicalGroupResponse(group, allIDs, len(students)))
	}

	sort.Slice(responses, func(i, j int) bool { return responses[i].ID < responses[j].ID })

	span.SetAttributes(attribute.Int("grading_group.canonical_count", len(responses)))
	return responses, nil
}
