package service

import (
	"context"
	"strings"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

type AreaService struct {
	store  Store
	own    *owner
	photos *PhotoService
	newID  func() string
}

func (s *AreaService) Create(ctx context.Context, userID, projectID string, in domain.AreaInput) (*domain.Area, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	a := &domain.Area{ID: s.newID(), ProjectID: projectID, Name: strings.TrimSpace(in.Name)}
	if err := s.store.CreateArea(ctx, a); err != nil {
		return nil, wrap(OpSave, "area", err)
	}
	return a, nil
}

// List returns the project's areas in creation order.
func (s *AreaService) List(ctx context.Context, userID, projectID string) ([]domain.Area, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	items, err := s.store.ListAreas(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "areas", err)
	}
	return items, nil
}

func (s *AreaService) Rename(ctx context.Context, userID, id string, in domain.AreaInput) (*domain.Area, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, _, err := s.own.area(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	a.Name = strings.TrimSpace(in.Name)
	if err := s.store.RenameArea(ctx, id, a.Name); err != nil {
		return nil, wrap(OpSave, "area", err)
	}
	return a, nil
}

// Delete removes the area and its equipment along with their photos.
func (s *AreaService) Delete(ctx context.Context, userID, id string) error {
	a, _, err := s.own.area(ctx, userID, id)
	if err != nil {
		return err
	}
	var urls []string
	if a.PhotoURL != nil {
		urls = append(urls, *a.PhotoURL)
	}
	if items, err := s.store.ListEquipmentByArea(ctx, id); err == nil {
		for _, e := range items {
			if e.PhotoURL != nil {
				urls = append(urls, *e.PhotoURL)
			}
		}
	}
	if err := s.store.DeleteArea(ctx, id); err != nil {
		return wrap(OpDelete, "area", err)
	}
	for _, u := range urls {
		s.photos.remove(ctx, u)
	}
	return nil
}

// SetPhoto replaces the area photo.
func (s *AreaService) SetPhoto(ctx context.Context, userID, id string, up PhotoUpload) (*domain.Area, error) {
	a, p, err := s.own.area(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	old := a.PhotoURL
	url, err := s.photos.attach(ctx, "area", p.UserID, a.ID, up, func(url string) error {
		return s.store.SetAreaPhoto(ctx, a.ID, &url)
	})
	if err != nil {
		return nil, err
	}
	if old != nil {
		s.photos.remove(ctx, *old)
	}
	a.PhotoURL = &url
	return a, nil
}
