package memory

import (
	"time"

	"exam-prep-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const plansKey = "catalog:plans"

type CatalogCache struct {
	cache *cache.Cache
}

func NewCatalogCache() *CatalogCache {
	// Plans change rarely; a short TTL keeps admin edits visible without
	// a manual flush on every write path.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &CatalogCache{
		cache: c,
	}
}

func (r *CatalogCache) SavePlans(plans []*entity.Plan) {
	r.cache.Set(plansKey, plans, cache.DefaultExpiration)
}

func (r *CatalogCache) GetPlans() ([]*entity.Plan, bool) {
	if x, found := r.cache.Get(plansKey); found {
		return x.([]*entity.Plan), true
	}
	return nil, false
}

func (r *CatalogCache) InvalidatePlans() {
	r.cache.Delete(plansKey)
}

func (r *CatalogCache) SaveContent(key string, content *entity.SiteContent) {
	r.cache.Set("content:"+key, content, cache.DefaultExpiration)
}

func (r *CatalogCache) GetContent(key string) (*entity.SiteContent, bool) {
	if x, found := r.cache.Get("content:" + key); found {
		return x.(*entity.SiteContent), true
	}
	return nil, false
}

func (r *CatalogCache) InvalidateContent(key string) {
	r.cache.Delete("content:" + key)
}
