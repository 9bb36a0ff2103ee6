package memory

import (
	"time"

	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type JobRepository struct {
	cache *cache.Cache
}

// NewJobRepository keeps jobs for one hour, purging every ten minutes.
func NewJobRepository() contract.JobRepository {
	return &JobRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Save stores a copy so callers can keep mutating their own value.
func (r *JobRepository) Save(job *entity.AnalysisJob) {
	cp := *job
	r.cache.Set(job.Id, &cp, cache.DefaultExpiration)
}

func (r *JobRepository) Get(id string) (*entity.AnalysisJob, bool) {
	if x, found := r.cache.Get(id); found {
		cp := *x.(*entity.AnalysisJob)
		return &cp, true
	}
	return nil, false
}
