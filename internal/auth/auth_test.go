package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	p := domain.Principal{ID: "u1", EmpID: "E1", Name: "Ada", Role: domain.RoleAdmin, AccessTo: domain.AccessResearch}

	token, err := tm.Generate(p)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, p, claims.Principal())
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret", time.Hour).Generate(domain.Principal{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issued }
	token, err := tm.Generate(domain.Principal{ID: "u1"})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsPrincipalFallsBackToLeastPrivilege(t *testing.T) {
	c := &Claims{ID: "u1", Role: "root", AccessTo: "everything"}
	p := c.Principal()
	assert.Equal(t, domain.RoleUser, p.Role)
	assert.Equal(t, domain.AccessNone, p.AccessTo)
}

func TestPasswordHashVerify(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := h.Verify("correct horse", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordVerifyMalformed(t *testing.T) {
	h := NewPasswordHasher()
	for _, encoded := range []string{"", "plain", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", "$argon2id$v=19$m=x$c2FsdA$a2V5"} {
		_, err := h.Verify("pw", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}
