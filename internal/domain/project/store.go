package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/ganot/lumina/internal/repository"
)

// StorageKey is the single key all projects are stored under. The value
// is a JSON array, newest project first, matching the legacy format.
const StorageKey = "lumina_projects"

// Store holds all projects in memory and persists the full list through
// a key-value repository after every mutation.
type Store struct {
	mu       sync.RWMutex
	projects []Project
	kv       repository.KV
	legacy   repository.KV
	logger   *slog.Logger
}

// NewStore creates a Store. legacy is an optional older storage backend
// to migrate from on first load; pass nil when there is none.
func NewStore(kv repository.KV, legacy repository.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, legacy: legacy, logger: logger}
}

// Load reads the project list into memory. If the primary store is empty
// and a legacy store holds data, the data is migrated over and removed
// from the legacy store.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, StorageKey)
	switch {
	case err == nil:
		return s.decodeLocked(data)
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("loading projects: %w", err)
	}

	if s.legacy == nil {
		s.projects = nil
		return nil
	}

	legacyData, err := s.legacy.Get(ctx, StorageKey)
	if errors.Is(err, repository.ErrNotFound) {
		s.projects = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading legacy projects: %w", err)
	}

	if err := s.decodeLocked(legacyData); err != nil {
		return fmt.Errorf("decoding legacy projects: %w", err)
	}
	if len(s.projects) == 0 {
		return nil
	}

	s.logger.Info("migrating projects from legacy storage", "count", len(s.projects))
	if err := s.kv.Set(ctx, StorageKey, legacyData); err != nil {
		return fmt.Errorf("migrating projects: %w", err)
	}
	if err := s.legacy.Delete(ctx, StorageKey); err != nil {
		s.logger.Warn("legacy project data not removed after migration", "error", err)
	}
	return nil
}

func (s *Store) decodeLocked(data []byte) error {
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return fmt.Errorf("decoding projects: %w", err)
	}
	s.projects = projects
	return nil
}

// List returns a snapshot of all projects, newest first.
func (s *Store) List() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

// Get returns a copy of one project.
func (s *Store) Get(projectID string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return cloneProject(s.projects[i]), nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// Insert prepends a project and persists.
func (s *Store) Insert(ctx context.Context, p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]Project{p}, s.projects...)
	s.persistLocked(ctx)
}

// Delete removes a project and persists immediately; removing a missing
// project is not an error.
func (s *Store) Delete(ctx context.Context, projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.persistLocked(ctx)
}

// Mutate applies fn to the project with the given id and persists. fn
// receives a pointer into the store's own copy, under the lock.
func (s *Store) Mutate(ctx context.Context, projectID string, fn func(*Project)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			fn(&s.projects[i])
			s.persistLocked(ctx)
			return nil
		}
	}
	return ErrProjectNotFound
}

// View implements asset.Store.
func (s *Store) View(projectID, conceptID string) (asset.ProjectView, *concept.BrandConcept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		p := &s.projects[i]
		idx := p.FindConcept(conceptID)
		if idx < 0 {
			return asset.ProjectView{}, nil, ErrConceptNotFound
		}
		view := asset.ProjectView{
			CompanyName:  p.CompanyName,
			BusinessType: p.BusinessType,
			BrandStyle:   p.BrandStyle,
		}
		return view, p.Concepts[idx].Clone(), nil
	}
	return asset.ProjectView{}, nil, ErrProjectNotFound
}

// Update implements asset.Store: it applies a merge patch to one concept
// and persists.
func (s *Store) Update(ctx context.Context, projectID, conceptID string, patch concept.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, ok := ApplyUpdate(s.projects, projectID, conceptID, patch)
	if !ok {
		return fmt.Errorf("%w: project %q concept %q", ErrConceptNotFound, projectID, conceptID)
	}
	s.projects = updated
	s.persistLocked(ctx)
	return nil
}

// ApplyUpdate returns a new project list with patch merged into the
// named concept, reporting whether the target was found. Pure: neither
// the input slice nor its projects are modified.
func ApplyUpdate(projects []Project, projectID, conceptID string, patch concept.Patch) ([]Project, bool) {
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		idx := projects[i].FindConcept(conceptID)
		if idx < 0 {
			return projects, false
		}

		updated := cloneProjects(projects)
		updated[i].Concepts[idx].Apply(patch)
		return updated, true
	}
	return projects, false
}

// persistLocked writes the full list through the repository. Persistence
// failures are logged, not returned: the in-memory session stays usable
// and the next successful write catches it up.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.projects)
	if err != nil {
		s.logger.Error("encoding projects for persistence", "error", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("persisting projects", "error", err)
	}
}

func cloneProjects(projects []Project) []Project {
	cloned := make([]Project, len(projects))
	for i := range projects {
		cloned[i] = cloneProject(projects[i])
	}
	return cloned
}

func cloneProject(p Project) Project {
	clone := p
	clone.Concepts = make([]concept.BrandConcept, len(p.Concepts))
	for i := range p.Concepts {
		clone.Concepts[i] = *p.Concepts[i].Clone()
	}
	return clone
}
