package contract

import "plagiarismpro-be/internal/entity"

type JobRepository interface {
	Save(job *entity.AnalysisJob)
	Get(id string) (*entity.AnalysisJob, bool)
}
