package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/repository"
)

// Store is the record persistence the services need.
type Store interface {
	CreateProject(ctx context.Context, p *domain.Project) error
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, p *domain.Project) error
	DeleteProject(ctx context.Context, id string) error

	CreateArea(ctx context.Context, a *domain.Area) error
	GetArea(ctx context.Context, id string) (*domain.Area, error)
	ListAreas(ctx context.Context, projectID string) ([]domain.Area, error)
	RenameArea(ctx context.Context, id, name string) error
	SetAreaPhoto(ctx context.Context, id string, url *string) error
	DeleteArea(ctx context.Context, id string) error

	CreateEquipment(ctx context.Context, e *domain.Equipment) error
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListEquipmentByArea(ctx context.Context, areaID string) ([]domain.Equipment, error)
	ListEquipmentByProject(ctx context.Context, projectID string) ([]domain.EquipmentWithArea, error)
	UpdateEquipment(ctx context.Context, e *domain.Equipment) error
	SetEquipmentPhoto(ctx context.Context, id string, url *string) error
	DeleteEquipment(ctx context.Context, id string) error
	ListPhotos(ctx context.Context, projectID string) ([]domain.Photo, error)

	GetObservations(ctx context.Context, projectID string) (*domain.Observations, error)
	UpsertObservations(ctx context.Context, o *domain.Observations) error
	CreateRecommendation(ctx context.Context, rec *domain.Recommendation) error
	GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error)
	ListRecommendations(ctx context.Context, projectID string) ([]domain.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error
}

// ObjectStore keeps uploaded photos.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

// ReportArchive keeps exported report files and hands back a download URL.
type ReportArchive interface {
	UploadReport(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Notifier interface {
	ReportReady(ctx context.Context, exp domain.ReportExport) error
}

type ExportLog interface {
	PutExport(ctx context.Context, exp domain.ReportExport) error
	ListExports(ctx context.Context, projectID string) ([]domain.ReportExport, error)
}

// Options wires the optional collaborators and settings. Nil cloud
// collaborators disable the features that need them.
type Options struct {
	Calculator        *energy.Calculator
	Categories        []string
	DateLayout        string
	CompensateOrphans bool

	Photos   ObjectStore
	Archive  ReportArchive
	Notifier Notifier
	Exports  ExportLog

	Now   func() time.Time
	NewID func() string
}

type Services struct {
	Projects  *ProjectService
	Areas     *AreaService
	Equipment *EquipmentService
	Notes     *NoteService
	Photos    *PhotoService
	Reports   *ReportService

	Calculator *energy.Calculator
	Categories []string
}

func New(db *sqlx.DB, opts Options) *Services {
	return NewWithStore(repository.New(db), opts)
}

func NewWithStore(store Store, opts Options) *Services {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Calculator == nil {
		opts.Calculator = energy.NewCalculator(energy.MonthlyFixed30)
	}
	if opts.Categories == nil {
		opts.Categories = domain.DefaultCategories
	}

	own := &owner{store: store}
	photos := &PhotoService{
		store:      store,
		own:        own,
		objects:    opts.Photos,
		compensate: opts.CompensateOrphans,
		now:        opts.Now,
	}
	return &Services{
		Projects: &ProjectService{store: store, own: own, photos: photos, newID: opts.NewID},
		Areas:    &AreaService{store: store, own: own, photos: photos, newID: opts.NewID},
		Equipment: &EquipmentService{
			store:      store,
			own:        own,
			photos:     photos,
			calc:       opts.Calculator,
			categories: opts.Categories,
			newID:      opts.NewID,
		},
		Notes:   &NoteService{store: store, own: own, newID: opts.NewID},
		Photos:  photos,
		Reports: &ReportService{
			store:      store,
			own:        own,
			archive:    opts.Archive,
			notifier:   opts.Notifier,
			exports:    opts.Exports,
			dateLayout: opts.DateLayout,
			now:        opts.Now,
			newID:      opts.NewID,
		},
		Calculator: opts.Calculator,
		Categories: opts.Categories,
	}
}

// owner resolves records through their project and hides anything the
// caller does not own behind ErrNotFound.
type owner struct {
	store Store
}

func (o *owner) project(ctx context.Context, userID, id string) (*domain.Project, error) {
	p, err := o.store.GetProject(ctx, id)
	if err != nil {
		return nil, wrap(OpLoad, "project", err)
	}
	if p.UserID != userID {
		return nil, wrap(OpLoad, "project", ErrNotFound)
	}
	return p, nil
}

func (o *owner) area(ctx context.Context, userID, id string) (*domain.Area, *domain.Project, error) {
	a, err := o.store.GetArea(ctx, id)
	if err != nil {
		return nil, nil, wrap(OpLoad, "area", err)
	}
	p, err := o.project(ctx, userID, a.ProjectID)
	if err != nil {
		return nil, nil, retag("area", err)
	}
	return a, p, nil
}

func (o *owner) equipment(ctx context.Context, userID, id string) (*domain.Equipment, *domain.Area, error) {
	e, err := o.store.GetEquipment(ctx, id)
	if err != nil {
		return nil, nil, wrap(OpLoad, "equipment", err)
	}
	a, _, err := o.area(ctx, userID, e.AreaID)
	if err != nil {
		return nil, nil, retag("equipment", err)
	}
	return e, a, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
