package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/mapper"
	"plagiarismpro-be/internal/model"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
)

// SessionRepositoryImpl stores the session as the token and user keys.
type SessionRepositoryImpl struct {
	store  contract.DeviceStorageRepository
	mapper *mapper.ProfileMapper
	logger logger.ILogger
}

func NewSessionRepository(store contract.DeviceStorageRepository, log logger.ILogger) contract.SessionRepository {
	return &SessionRepositoryImpl{
		store:  store,
		mapper: mapper.NewProfileMapper(),
		logger: log,
	}
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, deviceID string, session *entity.UserSession) error {
	if session.Profile != nil {
		raw, err := json.Marshal(r.mapper.ToModel(session.Profile))
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		if err := r.store.SetItem(ctx, deviceID, contract.KeyUser, string(raw)); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
	}
	if err := r.store.SetItem(ctx, deviceID, contract.KeyToken, session.Token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (r *SessionRepositoryImpl) Find(ctx context.Context, deviceID string) (*entity.UserSession, error) {
	token, _, err := r.store.GetItem(ctx, deviceID, contract.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	session := &entity.UserSession{Token: token}

	raw, ok, err := r.store.GetItem(ctx, deviceID, contract.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if ok && raw != "" {
		var profile model.UserProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			r.logger.Warn("SESSION", "Ignoring unreadable profile", map[string]interface{}{
				"device_id": deviceID,
				"error":     err.Error(),
			})
		} else {
			session.Profile = r.mapper.ToEntity(&profile)
		}
	}
	return session, nil
}

func (r *SessionRepositoryImpl) ClearToken(ctx context.Context, deviceID string) error {
	return r.store.RemoveItem(ctx, deviceID, contract.KeyToken)
}
