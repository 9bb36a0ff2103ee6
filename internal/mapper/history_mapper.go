package mapper

import (
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.HistoryEntry) *entity.HistoryEntry {
	if h == nil {
		return nil
	}
	return &entity.HistoryEntry{
		Id: h.Id,
		AnalysisResult: entity.AnalysisResult{
			Title:           h.Title,
			WordCount:       h.WordCount,
			PlagiarismScore: h.PlagiarismScore,
			Citations: entity.Citations{
				Valid:   h.Citations.Valid,
				Invalid: h.Citations.Invalid,
				Total:   h.Citations.Total,
			},
			Summary:     h.Summary,
			ProcessedAt: h.ProcessedAt,
		},
		Timestamp: h.Timestamp,
	}
}

func (m *HistoryMapper) ToModel(h *entity.HistoryEntry) *model.HistoryEntry {
	if h == nil {
		return nil
	}
	return &model.HistoryEntry{
		Id:              h.Id,
		Title:           h.Title,
		WordCount:       h.WordCount,
		PlagiarismScore: h.PlagiarismScore,
		Citations: model.Citations{
			Valid:   h.Citations.Valid,
			Invalid: h.Citations.Invalid,
			Total:   h.Citations.Total,
		},
		Summary:     h.Summary,
		ProcessedAt: h.ProcessedAt,
		Timestamp:   h.Timestamp,
	}
}

func (m *HistoryMapper) ToEntities(list []model.HistoryEntry) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, 0, len(list))
	for i := range list {
		out = append(out, *m.ToEntity(&list[i]))
	}
	return out
}

func (m *HistoryMapper) ToModels(list []entity.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(list))
	for i := range list {
		out = append(out, *m.ToModel(&list[i]))
	}
	return out
}
