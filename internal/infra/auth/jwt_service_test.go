package auth

import (
	"testing"
	"time"

	"todolist/config"
	"todolist/internal/domain/service"
	"todolist/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(testSecret, "HS256", 30*time.Minute, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(map[string]any{"sub": "alice@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims["sub"])
	assert.EqualValues(t, clock.now.Add(30*time.Minute).Unix(), claims["exp"])
}

func TestJWTService_IssueDoesNotMutateInput(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Now()})

	input := map[string]any{"sub": "alice@example.com"}
	_, err := svc.Issue(input)
	require.NoError(t, err)

	assert.NotContains(t, input, "exp")
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(map[string]any{"sub": "alice@example.com"})
	require.NoError(t, err)

	clock.now = issuedAt.Add(29 * time.Minute)
	_, err = svc.Decode(token)
	assert.NoError(t, err)

	clock.now = issuedAt.Add(31 * time.Minute)
	_, err = svc.Decode(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &fakeClock{now: now})

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": now.Add(time.Minute).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	otherAlgorithm, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": now.Add(time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": now.Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong algorithm", token: otherAlgorithm},
		{name: "unsigned", token: unsigned},
		{name: "missing exp", token: noExpiry},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.Decode(tc.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestJWTService_Construction(t *testing.T) {
	_, err := NewJWTServiceWithClock("", "HS256", time.Minute, time.Now)
	assert.ErrorContains(t, err, "jwt secret must be provided")

	_, err = NewJWTServiceWithClock(testSecret, "HS256", 0, time.Now)
	assert.Error(t, err)

	_, err = NewJWTServiceWithClock(testSecret, "RS256", time.Minute, time.Now)
	assert.ErrorContains(t, err, "unsupported jwt algorithm")

	svc, err := NewJWTServiceWithClock(testSecret, "", time.Minute, nil)
	require.NoError(t, err)
	assertLifetime(t, svc, time.Minute)
}

// assertLifetime issues a token with the real clock and checks its exp claim.
func assertLifetime(t *testing.T, svc service.TokenService, want time.Duration) {
	t.Helper()

	issuedAt := time.Now()
	token, err := svc.Issue(map[string]any{"sub": "alice@example.com"})
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim is numeric")
	assert.InDelta(t, float64(issuedAt.Add(want).Unix()), exp, 2)
}

func TestJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth.Algorithm = "HS256"
	cfg.Auth.AccessTokenTTL = 30 * time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assertLifetime(t, svc, 30*time.Minute)
}
