package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

// NoteService handles the auditor's observations and recommendations.
type NoteService struct {
	store Store
	own   *owner
	newID func() string
}

// Observations returns nil when none have been recorded for the project.
func (s *NoteService) Observations(ctx context.Context, userID, projectID string) (*domain.Observations, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	o, err := s.store.GetObservations(ctx, projectID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(OpLoad, "observations", err)
	}
	return o, nil
}

// SaveObservations updates the project's observations, creating them on
// first save. Blank fields are stored as absent.
func (s *NoteService) SaveObservations(ctx context.Context, userID, projectID string, in domain.ObservationsInput) (*domain.Observations, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	o := &domain.Observations{
		ID:                   s.newID(),
		ProjectID:            projectID,
		VentilationCondition: blankToNil(in.VentilationCondition),
		ComfortLevels:        blankToNil(in.ComfortLevels),
		LightingAdequacy:     blankToNil(in.LightingAdequacy),
		SignsOfWaste:         blankToNil(in.SignsOfWaste),
		MaintenanceIssues:    blankToNil(in.MaintenanceIssues),
		SafetyConcerns:       blankToNil(in.SafetyConcerns),
	}
	if err := s.store.UpsertObservations(ctx, o); err != nil {
		return nil, wrap(OpSave, "observations", err)
	}
	return o, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(strings.TrimSpace(*s))
}

func (s *NoteService) AddRecommendation(ctx context.Context, userID, projectID string, in domain.RecommendationInput) (*domain.Recommendation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	rec := &domain.Recommendation{
		ID:                       s.newID(),
		ProjectID:                projectID,
		Description:              strings.TrimSpace(in.Description),
		Explanation:              optional(strings.TrimSpace(in.Explanation)),
		EstimatedSavingsKWhMonth: in.EstimatedSavingsKWhMonth,
		EstimatedSavingsGHSMonth: in.EstimatedSavingsGHSMonth,
	}
	if err := s.store.CreateRecommendation(ctx, rec); err != nil {
		return nil, wrap(OpSave, "recommendation", err)
	}
	return rec, nil
}

// Recommendations returns the project's recommendations in creation order.
func (s *NoteService) Recommendations(ctx context.Context, userID, projectID string) ([]domain.Recommendation, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	items, err := s.store.ListRecommendations(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "recommendations", err)
	}
	return items, nil
}

func (s *NoteService) DeleteRecommendation(ctx context.Context, userID, id string) error {
	rec, err := s.store.GetRecommendation(ctx, id)
	if err != nil {
		return wrap(OpLoad, "recommendation", err)
	}
	if _, err := s.own.project(ctx, userID, rec.ProjectID); err != nil {
		return retag("recommendation", err)
	}
	if err := s.store.DeleteRecommendation(ctx, id); err != nil {
		return wrap(OpDelete, "recommendation", err)
	}
	return nil
}
