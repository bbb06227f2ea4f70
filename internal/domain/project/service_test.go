package project_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/ganot/lumina/internal/domain/project"
)

// stubGenerator returns canned concepts with realistic ids.
type stubGenerator struct {
	requests []concept.GenerateRequest
	err      error
}

func (g *stubGenerator) Generate(ctx context.Context, req concept.GenerateRequest) ([]concept.BrandConcept, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return []concept.BrandConcept{{
		ID:      fmt.Sprintf("concept-%d-0", time.Now().UnixMilli()),
		Name:    "Nova Noir",
		Summary: "Quiet luxury for the morning ritual",
	}}, nil
}

func newService(t *testing.T, gen *stubGenerator) (*project.Service, *project.Store) {
	t.Helper()
	store := project.NewStore(newMemKV(), nil, nil)
	require.NoError(t, store.Load(context.Background()))
	return project.NewService(store, gen, nil), store
}

func TestService_Create(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newService(t, gen)

	p, err := svc.Create(context.Background(), project.CreateRequest{
		CompanyName:  "Nova",
		Description:  "Specialty espresso bar",
		BusinessType: "Coffee Shop",
		BrandStyle:   "Minimalist",
	})
	require.NoError(t, err)

	require.NotEmpty(t, p.ID)
	require.Equal(t, project.StatusGeneratingImages, p.Status)
	require.Equal(t, 10, p.Progress)
	require.Len(t, p.Concepts, 1)
	require.Regexp(t, regexp.MustCompile(`^concept-\d+-0$`), p.Concepts[0].ID)

	require.Len(t, gen.requests, 1)
	require.Equal(t, "Nova", gen.requests[0].CompanyName)
	require.Equal(t, "Coffee Shop", gen.requests[0].BusinessType)
	require.Equal(t, "Minimalist", gen.requests[0].BrandStyle)
}

func TestService_CreateFailureLeavesErrorStatus(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model down")}
	svc, _ := newService(t, gen)

	_, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "Nova"})
	require.ErrorIs(t, err, gen.err)

	// The project remains listed so the failure is visible.
	projects := svc.List()
	require.Len(t, projects, 1)
	require.Equal(t, project.StatusError, projects[0].Status)
}

func TestService_CreatePrependsNewest(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newService(t, gen)

	first, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "First"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "Second"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	projects := svc.List()
	require.Equal(t, "Second", projects[0].CompanyName)
	require.Equal(t, "First", projects[1].CompanyName)
}

func TestService_AddConcept(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newService(t, gen)

	p, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)

	added, err := svc.AddConcept(context.Background(), p.ID)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^concept-\d+-1$`), added.ID)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Concepts, 2)
	require.Equal(t, project.StatusGeneratingImages, got.Status)
}

func TestService_AddConceptFailureRestoresStatus(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newService(t, gen)

	p, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)

	gen.err = errors.New("quota hit")
	_, err = svc.AddConcept(context.Background(), p.ID)
	require.ErrorIs(t, err, gen.err)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Concepts, 1)
	require.Equal(t, project.StatusGeneratingImages, got.Status)
}

func TestService_AddConceptUnknownProject(t *testing.T) {
	svc, _ := newService(t, &stubGenerator{})
	_, err := svc.AddConcept(context.Background(), "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newService(t, &stubGenerator{})
	p, err := svc.Create(context.Background(), project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)

	svc.Delete(context.Background(), p.ID)
	require.Empty(t, svc.List())
}

func TestService_MarkComplete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, &stubGenerator{})
	p, err := svc.Create(ctx, project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkComplete(ctx, p.ID))

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, project.StatusComplete, got.Status)
	require.Equal(t, 100, got.Progress)

	require.ErrorIs(t, svc.MarkComplete(ctx, "missing"), project.ErrProjectNotFound)
}

func TestService_SelectVersion(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, &stubGenerator{})
	p, err := svc.Create(ctx, project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)
	conceptID := p.Concepts[0].ID

	history := asset.AppendVersion(nil, "data:image/png;base64,old")
	history = asset.AppendVersion(history, "data:image/png;base64,new")
	require.NoError(t, store.Update(ctx, p.ID, conceptID, concept.Patch{
		LogoURL:     concept.Ref("data:image/png;base64,new"),
		LogoHistory: history,
	}))

	require.NoError(t, svc.SelectVersion(ctx, p.ID, conceptID, asset.SlotLogo, "data:image/png;base64,old"))

	_, c, err := store.View(p.ID, conceptID)
	require.NoError(t, err)
	require.Equal(t, concept.AssetRef("data:image/png;base64,old"), *c.LogoURL)
	// History itself is untouched by selection.
	require.Len(t, c.LogoHistory, 2)
}

func TestService_SelectVersionRejectsUnknownRef(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, &stubGenerator{})
	p, err := svc.Create(ctx, project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)
	conceptID := p.Concepts[0].ID

	require.NoError(t, store.Update(ctx, p.ID, conceptID, concept.Patch{
		LogoHistory: asset.AppendVersion(nil, "data:image/png;base64,only"),
	}))

	err = svc.SelectVersion(ctx, p.ID, conceptID, asset.SlotLogo, "data:image/png;base64,never")
	require.ErrorIs(t, err, asset.ErrVersionNotFound)
}

func TestService_SelectVersionHeroSlotsOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, &stubGenerator{})
	p, err := svc.Create(ctx, project.CreateRequest{CompanyName: "Nova"})
	require.NoError(t, err)

	err = svc.SelectVersion(ctx, p.ID, p.Concepts[0].ID, asset.SlotMockups, "data:image/png;base64,x")
	require.ErrorIs(t, err, asset.ErrNoVersionsForSlot)
}
