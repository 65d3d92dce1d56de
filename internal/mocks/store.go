package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/repository"
)

// MockStore is an in-memory record store. Func fields override the default
// behaviour for failure injection.
type MockStore struct {
	mu    sync.Mutex
	clock time.Time

	Projects        map[string]domain.Project
	Areas           map[string]domain.Area
	Equipment       map[string]domain.Equipment
	Observations    map[string]domain.Observations
	Recommendations map[string]domain.Recommendation

	CreateProjectFunc       func(ctx context.Context, p *domain.Project) error
	CreateEquipmentFunc     func(ctx context.Context, e *domain.Equipment) error
	UpdateEquipmentFunc     func(ctx context.Context, e *domain.Equipment) error
	SetEquipmentPhotoFunc   func(ctx context.Context, id string, url *string) error
	SetAreaPhotoFunc        func(ctx context.Context, id string, url *string) error
	ListEquipmentByProjFunc func(ctx context.Context, projectID string) ([]domain.EquipmentWithArea, error)
	UpsertObservationsFunc  func(ctx context.Context, o *domain.Observations) error
}

func NewMockStore() *MockStore {
	return &MockStore{
		clock:           time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		Projects:        make(map[string]domain.Project),
		Areas:           make(map[string]domain.Area),
		Equipment:       make(map[string]domain.Equipment),
		Observations:    make(map[string]domain.Observations),
		Recommendations: make(map[string]domain.Recommendation),
	}
}

// tick returns strictly increasing creation times so ordering is stable.
func (m *MockStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MockStore) CreateProject(ctx context.Context, p *domain.Project) error {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p.CreatedAt = m.tick()
	p.UpdatedAt = p.CreatedAt
	m.Projects[p.ID] = *p
	return nil
}

func (m *MockStore) GetProject(_ context.Context, id string) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *MockStore) ListProjects(_ context.Context, userID string) ([]domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Project{}
	for _, p := range m.Projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStore) UpdateProject(_ context.Context, p *domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Projects[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = m.tick()
	m.Projects[p.ID] = *p
	return nil
}

func (m *MockStore) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Projects, id)
	for aid, a := range m.Areas {
		if a.ProjectID == id {
			m.deleteAreaLocked(aid)
		}
	}
	delete(m.Observations, id)
	for rid, r := range m.Recommendations {
		if r.ProjectID == id {
			delete(m.Recommendations, rid)
		}
	}
	return nil
}

func (m *MockStore) CreateArea(_ context.Context, a *domain.Area) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.CreatedAt = m.tick()
	m.Areas[a.ID] = *a
	return nil
}

func (m *MockStore) GetArea(_ context.Context, id string) (*domain.Area, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Areas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (m *MockStore) ListAreas(_ context.Context, projectID string) ([]domain.Area, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Area{}
	for _, a := range m.Areas {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStore) RenameArea(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Areas[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Name = name
	m.Areas[id] = a
	return nil
}

func (m *MockStore) SetAreaPhoto(ctx context.Context, id string, url *string) error {
	if m.SetAreaPhotoFunc != nil {
		return m.SetAreaPhotoFunc(ctx, id, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Areas[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.PhotoURL = url
	m.Areas[id] = a
	return nil
}

func (m *MockStore) DeleteArea(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Areas[id]; !ok {
		return repository.ErrNotFound
	}
	m.deleteAreaLocked(id)
	return nil
}

func (m *MockStore) deleteAreaLocked(id string) {
	delete(m.Areas, id)
	for eid, e := range m.Equipment {
		if e.AreaID == id {
			delete(m.Equipment, eid)
		}
	}
}

func (m *MockStore) CreateEquipment(ctx context.Context, e *domain.Equipment) error {
	if m.CreateEquipmentFunc != nil {
		return m.CreateEquipmentFunc(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.CreatedAt = m.tick()
	m.Equipment[e.ID] = *e
	return nil
}

func (m *MockStore) GetEquipment(_ context.Context, id string) (*domain.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.Equipment[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (m *MockStore) ListEquipmentByArea(_ context.Context, areaID string) ([]domain.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Equipment{}
	for _, e := range m.Equipment {
		if e.AreaID == areaID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStore) ListEquipmentByProject(ctx context.Context, projectID string) ([]domain.EquipmentWithArea, error) {
	if m.ListEquipmentByProjFunc != nil {
		return m.ListEquipmentByProjFunc(ctx, projectID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.EquipmentWithArea{}
	for _, e := range m.Equipment {
		a, ok := m.Areas[e.AreaID]
		if ok && a.ProjectID == projectID {
			out = append(out, domain.EquipmentWithArea{Equipment: e, AreaName: a.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStore) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	if m.UpdateEquipmentFunc != nil {
		return m.UpdateEquipmentFunc(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Equipment[e.ID]; !ok {
		return repository.ErrNotFound
	}
	m.Equipment[e.ID] = *e
	return nil
}

func (m *MockStore) SetEquipmentPhoto(ctx context.Context, id string, url *string) error {
	if m.SetEquipmentPhotoFunc != nil {
		return m.SetEquipmentPhotoFunc(ctx, id, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.Equipment[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.PhotoURL = url
	m.Equipment[id] = e
	return nil
}

func (m *MockStore) DeleteEquipment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Equipment[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Equipment, id)
	return nil
}

func (m *MockStore) ListPhotos(_ context.Context, projectID string) ([]domain.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.Equipment
	for _, e := range m.Equipment {
		a, ok := m.Areas[e.AreaID]
		if ok && a.ProjectID == projectID && e.PhotoURL != nil {
			items = append(items, e)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	out := []domain.Photo{}
	for _, e := range items {
		out = append(out, domain.Photo{
			EquipmentID: e.ID,
			PhotoURL:    *e.PhotoURL,
			Description: e.Description,
			Category:    e.Category,
			AreaName:    m.Areas[e.AreaID].Name,
		})
	}
	return out, nil
}

func (m *MockStore) GetObservations(_ context.Context, projectID string) (*domain.Observations, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.Observations[projectID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (m *MockStore) UpsertObservations(ctx context.Context, o *domain.Observations) error {
	if m.UpsertObservationsFunc != nil {
		return m.UpsertObservationsFunc(ctx, o)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.Observations[o.ProjectID]; ok {
		o.ID = existing.ID
		o.CreatedAt = existing.CreatedAt
	} else {
		o.CreatedAt = m.tick()
	}
	m.Observations[o.ProjectID] = *o
	return nil
}

func (m *MockStore) CreateRecommendation(_ context.Context, rec *domain.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.CreatedAt = m.tick()
	m.Recommendations[rec.ID] = *rec
	return nil
}

func (m *MockStore) GetRecommendation(_ context.Context, id string) (*domain.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.Recommendations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *MockStore) ListRecommendations(_ context.Context, projectID string) ([]domain.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Recommendation{}
	for _, r := range m.Recommendations {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStore) DeleteRecommendation(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Recommendations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Recommendations, id)
	return nil
}
