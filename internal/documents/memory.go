package documents

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryTenantRepository constructs an "in memory" tenant repository.
func NewMemoryTenantRepository() TenantRepository {
	return &memoryTenantRepository{
		byID:   make(map[uuid.UUID]*Tenant),
		bySlug: make(map[string]uuid.UUID),
	}
}

type memoryTenantRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Tenant
	bySlug map[string]uuid.UUID
}

func (m *memoryTenantRepository) Create(_ context.Context, tenant *Tenant) (*Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneTenant(tenant)
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return cloneTenant(cloned), nil
}

func (m *memoryTenantRepository) GetByID(_ context.Context, id uuid.UUID) (*Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "tenant", Key: id.String()}
	}
	return cloneTenant(record), nil
}

func (m *memoryTenantRepository) GetBySlug(_ context.Context, slug string) (*Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return nil, &NotFoundError{Resource: "tenant", Key: slug}
	}
	return cloneTenant(m.byID[id]), nil
}

func (m *memoryTenantRepository) List(_ context.Context) ([]*Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Tenant, 0, len(m.byID))
	for _, tenant := range m.byID {
		out = append(out, cloneTenant(tenant))
	}
	return out, nil
}

// NewMemoryDocumentRepository constructs an "in memory" document repository.
func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{
		byID:     make(map[uuid.UUID]*Document),
		byLocale: make(map[localeKey]uuid.UUID),
	}
}

type localeKey struct {
	tenantID     uuid.UUID
	country      string
	languageCode string
}

type memoryDocumentRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*Document
	byLocale map[localeKey]uuid.UUID
}

func keyOf(document *Document) localeKey {
	return localeKey{
		tenantID:     document.TenantID,
		country:      document.Country,
		languageCode: document.LanguageCode,
	}
}

func (m *memoryDocumentRepository) Create(_ context.Context, document *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := document.Clone()
	m.byID[cloned.ID] = cloned
	m.byLocale[keyOf(cloned)] = cloned.ID
	return cloned.Clone(), nil
}

func (m *memoryDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: id.String()}
	}
	return record.Clone(), nil
}

func (m *memoryDocumentRepository) GetByLocale(_ context.Context, tenantID uuid.UUID, country, languageCode string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := localeKey{tenantID: tenantID, country: country, languageCode: languageCode}
	id, ok := m.byLocale[key]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: country + "/" + languageCode}
	}
	return m.byID[id].Clone(), nil
}

func (m *memoryDocumentRepository) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Document, 0)
	for _, document := range m.byID {
		if document.TenantID == tenantID {
			out = append(out, document.Clone())
		}
	}
	return out, nil
}

func (m *memoryDocumentRepository) Update(_ context.Context, document *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[document.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: document.ID.String()}
	}
	delete(m.byLocale, keyOf(existing))

	cloned := document.Clone()
	m.byID[cloned.ID] = cloned
	m.byLocale[keyOf(cloned)] = cloned.ID
	return cloned.Clone(), nil
}

func (m *memoryDocumentRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "document", Key: id.String()}
	}
	delete(m.byLocale, keyOf(record))
	delete(m.byID, id)
	return nil
}
