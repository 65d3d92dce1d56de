package service

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

type ProjectService struct {
	store  Store
	own    *owner
	photos *PhotoService
	newID  func() string
}

func (s *ProjectService) Create(ctx context.Context, userID string, in domain.ProjectInput) (*domain.Project, error) {
	date, err := in.Validate()
	if err != nil {
		return nil, err
	}
	p := &domain.Project{
		ID:              s.newID(),
		UserID:          userID,
		TariffGHSPerKWh: domain.DefaultTariff,
		Status:          domain.StatusDraft,
	}
	apply(p, in, date)
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, wrap(OpSave, "project", err)
	}
	log.Info().Str("project_id", p.ID).Str("client", p.ClientName).Msg("project created")
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]domain.Project, error) {
	items, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		return nil, wrap(OpLoad, "projects", err)
	}
	return items, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, id string) (*domain.Project, error) {
	return s.own.project(ctx, userID, id)
}

// Update replaces the editable fields. An omitted audit date, auditor list,
// tariff or status keeps the stored value.
func (s *ProjectService) Update(ctx context.Context, userID, id string, in domain.ProjectInput) (*domain.Project, error) {
	date, err := in.Validate()
	if err != nil {
		return nil, err
	}
	p, err := s.own.project(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.AuditDate == "" {
		date = p.AuditDate
	}
	apply(p, in, date)
	if err := s.store.UpdateProject(ctx, p); err != nil {
		return nil, wrap(OpSave, "project", err)
	}
	return p, nil
}

// Delete removes the project with everything under it, then drops the photo
// objects the removed records pointed at.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.own.project(ctx, userID, id); err != nil {
		return err
	}
	var urls []string
	if photos, err := s.store.ListPhotos(ctx, id); err == nil {
		for _, ph := range photos {
			urls = append(urls, ph.PhotoURL)
		}
	}
	if areas, err := s.store.ListAreas(ctx, id); err == nil {
		for _, a := range areas {
			if a.PhotoURL != nil {
				urls = append(urls, *a.PhotoURL)
			}
		}
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return wrap(OpDelete, "project", err)
	}
	for _, u := range urls {
		s.photos.remove(ctx, u)
	}
	log.Info().Str("project_id", id).Int("photos", len(urls)).Msg("project deleted")
	return nil
}

func apply(p *domain.Project, in domain.ProjectInput, date time.Time) {
	p.ClientName = in.ClientName
	p.SiteAddress = in.SiteAddress
	p.ContactPerson = in.ContactPerson
	p.BuildingType = in.BuildingType
	p.AuditDate = date
	if in.AuditorNames != nil || p.AuditorNames == nil {
		p.AuditorNames = pq.StringArray(domain.CleanAuditorNames(in.AuditorNames))
	}
	if in.TariffGHSPerKWh != nil {
		p.TariffGHSPerKWh = *in.TariffGHSPerKWh
	}
	if in.Status != "" {
		p.Status = in.Status
	}
}
