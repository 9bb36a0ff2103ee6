package dto

import "plagiarismpro-be/internal/entity"

func NewAnalysisResultResponse(r entity.AnalysisResult) AnalysisResultResponse {
	return AnalysisResultResponse{
		Title:           r.Title,
		WordCount:       r.WordCount,
		PlagiarismScore: r.PlagiarismScore,
		Citations: CitationsPayload{
			Valid:   r.Citations.Valid,
			Invalid: r.Citations.Invalid,
			Total:   r.Citations.Total,
		},
		Summary:     r.Summary,
		ProcessedAt: r.ProcessedAt,
	}
}

func NewHistoryEntryResponse(e *entity.HistoryEntry) *HistoryEntryResponse {
	if e == nil {
		return nil
	}
	return &HistoryEntryResponse{
		Id:                     e.Id,
		AnalysisResultResponse: NewAnalysisResultResponse(e.AnalysisResult),
		Timestamp:              e.Timestamp,
	}
}

func NewJobResponse(j *entity.AnalysisJob) JobResponse {
	return JobResponse{
		Id:        j.Id,
		State:     string(j.State),
		Phase:     j.Phase,
		Progress:  j.Progress,
		Entry:     NewHistoryEntryResponse(j.Entry),
		Error:     j.Error,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func NewProfileResponse(p *entity.UserProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		Email:      p.Email,
		Username:   p.Username,
		Profession: string(p.Profession),
	}
}

func (r *ViewsRequest) ToEntity() entity.AnalysisResult {
	return entity.AnalysisResult{
		Title:           r.Title,
		WordCount:       r.WordCount,
		PlagiarismScore: r.PlagiarismScore,
		Citations: entity.Citations{
			Valid:   r.Citations.Valid,
			Invalid: r.Citations.Invalid,
			Total:   r.Citations.Total,
		},
		Summary:     r.Summary,
		ProcessedAt: r.ProcessedAt,
	}
}
