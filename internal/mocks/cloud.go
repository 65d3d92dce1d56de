package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

const MockObjectBase = "https://objects.test/"

// MockObjectStore keeps uploaded objects in memory.
type MockObjectStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string

	UploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{Objects: make(map[string][]byte)}
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data, contentType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return MockObjectBase + key, nil
}

// UploadReport stores like Upload so one mock can back both photos and the
// report archive.
func (m *MockObjectStore) UploadReport(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url, err := m.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}
	return url + "?signed=1", nil
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *MockObjectStore) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, MockObjectBase)
	return key, ok && key != ""
}

func (m *MockObjectStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Objects[key]
	return ok
}

func (m *MockObjectStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Objects))
	for k := range m.Objects {
		out = append(out, k)
	}
	return out
}

type MockNotifier struct {
	Sent            []domain.ReportExport
	ReportReadyFunc func(ctx context.Context, exp domain.ReportExport) error
}

func (m *MockNotifier) ReportReady(ctx context.Context, exp domain.ReportExport) error {
	if m.ReportReadyFunc != nil {
		return m.ReportReadyFunc(ctx, exp)
	}
	m.Sent = append(m.Sent, exp)
	return nil
}

type MockExportLog struct {
	Items         []domain.ReportExport
	PutExportFunc func(ctx context.Context, exp domain.ReportExport) error
}

func (m *MockExportLog) PutExport(ctx context.Context, exp domain.ReportExport) error {
	if m.PutExportFunc != nil {
		return m.PutExportFunc(ctx, exp)
	}
	m.Items = append(m.Items, exp)
	return nil
}

func (m *MockExportLog) ListExports(_ context.Context, projectID string) ([]domain.ReportExport, error) {
	out := []domain.ReportExport{}
	for i := len(m.Items) - 1; i >= 0; i-- {
		if m.Items[i].ProjectID == projectID {
			out = append(out, m.Items[i])
		}
	}
	return out, nil
}
