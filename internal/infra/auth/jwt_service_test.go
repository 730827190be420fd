package auth

import (
	"testing"
	"time"

	"customo/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SigningSecret: secret,
			TokenTTL:      ttl,
		},
	}
	cfg.Env.Env = "test"

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ParseSubject(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_EmailClaim(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, "user@example.com")
	require.NoError(t, err)

	// Decode without verification just to inspect the claims payload.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, userID.String(), claims["sub"])
	assert.NotNil(t, claims["exp"])
	assert.NotNil(t, claims["iat"])
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", -time.Minute))
	require.NoError(t, err)
	// A non-positive TTL falls back to the default, so build an already
	// expired token by hand with the same stretched key.
	short, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Millisecond))
	require.NoError(t, err)

	token, err := short.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = short.ParseSubject(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	// The fallback instance still verifies fresh tokens.
	fresh, err := svc.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)
	_, err = svc.ParseSubject(fresh)
	assert.NoError(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("a-different-but-equally-long-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.ParseSubject(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

// A secret shorter than the HMAC key floor is stretched deterministically:
// two services built from the same short secret must agree on signatures.
func TestJWTService_ShortSecretStretchIsDeterministic(t *testing.T) {
	first, err := NewJWTService(newTestConfig("short", time.Hour))
	require.NoError(t, err)
	second, err := NewJWTService(newTestConfig("short", time.Hour))
	require.NoError(t, err)

	token, err := first.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = second.ParseSubject(token)
	assert.NoError(t, err)
}

func TestJWTService_TokenWithoutExpiryRejected(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)

	// Sign a token with the same key but no exp claim.
	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	signed, err := eternal.SignedString([]byte("a-sufficiently-long-signing-secret!"))
	require.NoError(t, err)

	_, err = svc.ParseSubject(signed)
	assert.Error(t, err)
}

func TestJWTService_UnsignedAlgorithmRejected(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseSubject(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ParseSubject(token)
		assert.Error(t, err, "expected error for token: %q", token)
	}
}

func TestJWTService_DefaultLifetime(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("a-sufficiently-long-signing-secret!", 0))
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.Lifetime())
}

func TestJWTService_RejectsEmptySecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_RejectsDefaultSecretInProduction(t *testing.T) {
	cfg := newTestConfig(config.DefaultSigningSecret, time.Hour)
	cfg.Env.Env = "production"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	// Outside production the default is tolerated for local development.
	_, err = NewJWTService(newTestConfig(config.DefaultSigningSecret, time.Hour))
	assert.NoError(t, err)
}
