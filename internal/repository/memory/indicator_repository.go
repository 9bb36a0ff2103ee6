package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// IndicatorRepository holds short-lived flags such as "report emailed".
type IndicatorRepository struct {
	cache *cache.Cache
}

func NewIndicatorRepository(ttl time.Duration) *IndicatorRepository {
	return &IndicatorRepository{
		cache: cache.New(ttl, time.Second),
	}
}

func indicatorKey(deviceID string, id int64) string {
	return fmt.Sprintf("%s:%d", deviceID, id)
}

func (r *IndicatorRepository) Set(deviceID string, id int64) {
	r.cache.Set(indicatorKey(deviceID, id), true, cache.DefaultExpiration)
}

func (r *IndicatorRepository) IsSet(deviceID string, id int64) bool {
	_, found := r.cache.Get(indicatorKey(deviceID, id))
	return found
}
