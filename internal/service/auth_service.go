package service

import (
	"context"
	"time"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/pkg/events"
	"plagiarismpro-be/pkg/token"
)

const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"

	demoUsername = "Demo User"
)

type IAuthService interface {
	Login(ctx context.Context, deviceID string, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Register(ctx context.Context, deviceID string, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, deviceID string) (*dto.SessionResponse, error)
	Session(ctx context.Context, deviceID string) (*dto.SessionResponse, error)
	IsAuthenticated(ctx context.Context, deviceID string) (bool, error)
	Professions() []string
}

type authService struct {
	sessions       contract.SessionRepository
	issuer         *token.Issuer
	delay          time.Duration
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewAuthService(
	sessions contract.SessionRepository,
	issuer *token.Issuer,
	delay time.Duration,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		sessions:       sessions,
		issuer:         issuer,
		delay:          delay,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Login never checks credentials: any well-formed pair signs in as the demo profile.
func (s *authService) Login(ctx context.Context, deviceID string, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	profile := &entity.UserProfile{
		Email:      req.Email,
		Username:   demoUsername,
		Profession: entity.ProfessionStudent,
	}
	res, err := s.signIn(ctx, deviceID, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Login", map[string]interface{}{"device_id": deviceID, "email": req.Email})
	publishEvent(ctx, s.eventPublisher, s.logger, events.UserLogin, map[string]interface{}{
		"device_id": deviceID,
		"email":     req.Email,
	})
	return res, nil
}

// Register stores the submitted profile as is; the password is dropped.
func (s *authService) Register(ctx context.Context, deviceID string, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	profile := &entity.UserProfile{
		Email:      req.Email,
		Username:   req.Username,
		Profession: entity.Profession(req.Profession),
	}
	res, err := s.signIn(ctx, deviceID, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Register", map[string]interface{}{"device_id": deviceID, "email": req.Email})
	publishEvent(ctx, s.eventPublisher, s.logger, events.UserRegistered, map[string]interface{}{
		"device_id":  deviceID,
		"email":      req.Email,
		"profession": req.Profession,
	})
	return res, nil
}

func (s *authService) signIn(ctx context.Context, deviceID string, profile *entity.UserProfile) (*dto.SessionResponse, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	tok, err := s.issuer.Issue(profile.Email, deviceID)
	if err != nil {
		return nil, err
	}

	session := &entity.UserSession{Token: tok, Profile: profile}
	if err := s.sessions.Save(ctx, deviceID, session); err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Authenticated: true,
		Token:         tok,
		Profile:       dto.NewProfileResponse(profile),
		NextRoute:     RouteDashboard,
	}, nil
}

func (s *authService) Logout(ctx context.Context, deviceID string) (*dto.SessionResponse, error) {
	if err := s.sessions.ClearToken(ctx, deviceID); err != nil {
		return nil, err
	}

	session, err := s.sessions.Find(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.UserLogout, map[string]interface{}{"device_id": deviceID})
	return &dto.SessionResponse{
		Authenticated: false,
		Profile:       dto.NewProfileResponse(session.Profile),
		NextRoute:     RouteLogin,
	}, nil
}

func (s *authService) Session(ctx context.Context, deviceID string) (*dto.SessionResponse, error) {
	session, err := s.sessions.Find(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Authenticated: s.valid(session, deviceID),
		Profile:       dto.NewProfileResponse(session.Profile),
	}, nil
}

func (s *authService) IsAuthenticated(ctx context.Context, deviceID string) (bool, error) {
	session, err := s.sessions.Find(ctx, deviceID)
	if err != nil {
		return false, err
	}
	return s.valid(session, deviceID), nil
}

// valid requires a token that verifies and was issued to this device.
func (s *authService) valid(session *entity.UserSession, deviceID string) bool {
	if !session.Authenticated() {
		return false
	}
	claims, err := s.issuer.Parse(session.Token)
	if err != nil {
		return false
	}
	return claims.DeviceId == deviceID
}

func (s *authService) Professions() []string {
	out := make([]string, 0, len(entity.Professions))
	for _, p := range entity.Professions {
		out = append(out, string(p))
	}
	return out
}
