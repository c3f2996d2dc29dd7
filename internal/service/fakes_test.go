package service

import (
	"context"
	"sync"

	"github.com/c4flow/studio-service/internal/models"
	"github.com/c4flow/studio-service/internal/repository"
)

type fakeCatalog struct {
	classes []models.CatalogItem
	bundles []models.CatalogItem
	err     error
}

func (f *fakeCatalog) ListClasses(context.Context) ([]models.CatalogItem, error) {
	return f.classes, f.err
}

func (f *fakeCatalog) GetClassBySlug(_ context.Context, slug string) (models.CatalogItem, error) {
	if f.err != nil {
		return models.CatalogItem{}, f.err
	}
	for _, c := range f.classes {
		if c.Slug == slug && c.Active {
			return c, nil
		}
	}
	return models.CatalogItem{}, repository.ErrNotFound
}

func (f *fakeCatalog) ListBundles(context.Context) ([]models.CatalogItem, error) {
	return f.bundles, f.err
}

type fakePromos struct {
	banner *models.BannerPromotion
	global *models.GlobalDiscount
	err    error
}

func (f *fakePromos) GetBanner(context.Context) (*models.BannerPromotion, error) {
	return f.banner, f.err
}

func (f *fakePromos) GetGlobalDiscount(context.Context) (*models.GlobalDiscount, error) {
	return f.global, f.err
}

type fakeSchedule struct {
	ws  models.WeeklySchedule
	err error
}

func (f *fakeSchedule) GetWeeklySchedule(context.Context) (models.WeeklySchedule, error) {
	return f.ws, f.err
}

type fakeStore struct {
	mu   sync.Mutex
	subs []models.ContactSubmission
	err  error
}

func (f *fakeStore) CreateSubmission(_ context.Context, sub models.ContactSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.subs = append(f.subs, sub)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	subs     []models.ContactSubmission
	traceIDs []string
	err      error
}

func (f *fakePublisher) PublishContactSubmitted(_ context.Context, sub models.ContactSubmission, traceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.subs = append(f.subs, sub)
	f.traceIDs = append(f.traceIDs, traceID)
	return nil
}

type fakeLimiter struct {
	limit int
	hits  map[string]int
	err   error
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.hits == nil {
		f.hits = map[string]int{}
	}
	f.hits[key]++
	return f.hits[key] <= f.limit, nil
}

type fakeIdem struct {
	claims   map[string]string
	released []string
	err      error
}

func (f *fakeIdem) Claim(_ context.Context, key, id string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	if f.claims == nil {
		f.claims = map[string]string{}
	}
	if existing, ok := f.claims[key]; ok {
		return existing, false, nil
	}
	f.claims[key] = id
	return id, true, nil
}

func (f *fakeIdem) Release(_ context.Context, key string) error {
	delete(f.claims, key)
	f.released = append(f.released, key)
	return nil
}
