package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/pkg/events"
	"plagiarismpro-be/pkg/token"
)

func newAuth(t *testing.T) (IAuthService, stores, *recordingPublisher) {
	t.Helper()
	st := newStores()
	pub := &recordingPublisher{}
	svc := NewAuthService(st.sessions, token.NewIssuer("test-secret", time.Hour), time.Millisecond, pub, logger.NewNopLogger())
	return svc, st, pub
}

func TestLoginWritesDemoProfile(t *testing.T) {
	ctx := context.Background()
	svc, st, pub := newAuth(t)

	res, err := svc.Login(ctx, testDevice, &dto.LoginRequest{Email: "jane@example.com", Password: "anything"})
	require.NoError(t, err)

	assert.True(t, res.Authenticated)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, RouteDashboard, res.NextRoute)
	assert.Equal(t, &dto.ProfileResponse{Email: "jane@example.com", Username: "Demo User", Profession: "Student"}, res.Profile)

	stored, ok, _ := st.device.GetItem(ctx, testDevice, contract.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, res.Token, stored)
	assert.Equal(t, []string{events.UserLogin}, pub.types())

	authed, err := svc.IsAuthenticated(ctx, testDevice)
	require.NoError(t, err)
	assert.True(t, authed)
}

func TestRegisterStoresSubmittedProfileWithoutPassword(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newAuth(t)

	res, err := svc.Register(ctx, testDevice, &dto.RegisterRequest{
		Email:      "sam@example.com",
		Username:   "Sam",
		Password:   "hunter2",
		Profession: "Content Creator",
	})
	require.NoError(t, err)
	assert.Equal(t, "Content Creator", res.Profile.Profession)

	raw, _, _ := st.device.GetItem(ctx, testDevice, contract.KeyUser)
	assert.JSONEq(t, `{"email":"sam@example.com","username":"Sam","profession":"Content Creator"}`, raw)
	assert.NotContains(t, raw, "hunter2")
}

func TestLogoutRemovesTokenOnly(t *testing.T) {
	ctx := context.Background()
	svc, st, pub := newAuth(t)

	_, err := svc.Login(ctx, testDevice, &dto.LoginRequest{Email: "jane@example.com", Password: "x"})
	require.NoError(t, err)

	res, err := svc.Logout(ctx, testDevice)
	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Equal(t, RouteLogin, res.NextRoute)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "jane@example.com", res.Profile.Email)

	_, ok, _ := st.device.GetItem(ctx, testDevice, contract.KeyToken)
	assert.False(t, ok)
	_, ok, _ = st.device.GetItem(ctx, testDevice, contract.KeyUser)
	assert.True(t, ok)

	assert.Equal(t, []string{events.UserLogin, events.UserLogout}, pub.types())
}

func TestTokenFromAnotherDeviceIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newAuth(t)

	res, err := svc.Login(ctx, "device-a", &dto.LoginRequest{Email: "jane@example.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, st.device.SetItem(ctx, "device-b", contract.KeyToken, res.Token))

	authed, err := svc.IsAuthenticated(ctx, "device-b")
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestLoginHonoursCancellation(t *testing.T) {
	st := newStores()
	svc := NewAuthService(st.sessions, token.NewIssuer("s", time.Hour), time.Hour, nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, testDevice, &dto.LoginRequest{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfessions(t *testing.T) {
	svc, _, _ := newAuth(t)
	assert.Equal(t, []string{"Student", "Researcher", "Academic", "Writer", "Journalist", "Content Creator", "Other"}, svc.Professions())
}
