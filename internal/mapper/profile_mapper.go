package mapper

import (
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}
	return &entity.UserProfile{
		Email:      p.Email,
		Username:   p.Username,
		Profession: entity.Profession(p.Profession),
	}
}

func (m *ProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}
	return &model.UserProfile{
		Email:      p.Email,
		Username:   p.Username,
		Profession: string(p.Profession),
	}
}
