package contract

import (
	"context"

	"plagiarismpro-be/internal/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, deviceID string, session *entity.UserSession) error
	Find(ctx context.Context, deviceID string) (*entity.UserSession, error)
	// ClearToken removes the token and keeps the profile.
	ClearToken(ctx context.Context, deviceID string) error
}
