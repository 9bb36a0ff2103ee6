package service

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/pkg/insight"
)

type IViewService interface {
	Build(req *dto.ViewsRequest) (*dto.ViewsResponse, error)
}

type viewService struct{}

func NewViewService() IViewService {
	return &viewService{}
}

func (s *viewService) Build(req *dto.ViewsRequest) (*dto.ViewsResponse, error) {
	if req.Citations.Total != req.Citations.Valid+req.Citations.Invalid {
		return nil, ErrCitationTotal
	}
	result := req.ToEntity()
	return &dto.ViewsResponse{
		Result: dto.NewAnalysisResultResponse(result),
		Views:  insight.Build(result, req.SummaryExpanded),
	}, nil
}
