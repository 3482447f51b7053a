package helper

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := CreateSessionToken(42)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)
	assert.NotContains(t, parts[0], "=")
	assert.NotContains(t, parts[1], "=")

	payload, ok := VerifySessionToken(token)
	require.True(t, ok)
	assert.Equal(t, uint(42), payload.Uid)
	assert.Greater(t, payload.Exp, time.Now().Unix())
	assert.LessOrEqual(t, payload.Exp, time.Now().Unix()+SessionMaxAgeSeconds)
}

func TestVerifySessionTokenRejectsTampering(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := CreateSessionToken(7)
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	flip := func(segment string) string {
		raw, err := base64.RawURLEncoding.DecodeString(segment)
		require.NoError(t, err)
		raw[0] ^= 0x01
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	t.Run("payload bit flip", func(t *testing.T) {
		payload, ok := VerifySessionToken(flip(parts[0]) + "." + parts[1])
		assert.False(t, ok)
		assert.Nil(t, payload)
	})

	t.Run("signature bit flip", func(t *testing.T) {
		payload, ok := VerifySessionToken(parts[0] + "." + flip(parts[1]))
		assert.False(t, ok)
		assert.Nil(t, payload)
	})

	t.Run("different secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "another-secret")
		payload, ok := VerifySessionToken(token)
		assert.False(t, ok)
		assert.Nil(t, payload)
	})
}

func TestVerifySessionTokenMalformed(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cases := []string{
		"",
		"justonesegment",
		"a.b.c",
		".signature",
		"payload.",
		"!!notbase64!!." + base64.RawURLEncoding.EncodeToString([]byte("x")),
	}
	for _, token := range cases {
		payload, ok := VerifySessionToken(token)
		assert.False(t, ok, "token %q", token)
		assert.Nil(t, payload)
	}
}

func TestVerifySessionTokenExpired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	secret, err := sessionSecret()
	require.NoError(t, err)

	segment := base64.RawURLEncoding.EncodeToString([]byte(`{"uid":5,"exp":1000}`))
	signature := base64.RawURLEncoding.EncodeToString(signSegment(secret, segment))

	payload, ok := VerifySessionToken(segment + "." + signature)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestVerifySessionTokenZeroUid(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	secret, err := sessionSecret()
	require.NoError(t, err)

	segment := base64.RawURLEncoding.EncodeToString([]byte(`{"uid":0,"exp":9999999999}`))
	signature := base64.RawURLEncoding.EncodeToString(signSegment(secret, segment))

	payload, ok := VerifySessionToken(segment + "." + signature)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestSessionSecretProduction(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_ENV", "production")

	require.Error(t, CheckSessionSecret())

	_, err := CreateSessionToken(1)
	assert.Error(t, err)

	t.Run("dev fallback", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		require.NoError(t, CheckSessionSecret())

		token, err := CreateSessionToken(1)
		require.NoError(t, err)
		_, ok := VerifySessionToken(token)
		assert.True(t, ok)
	})
}
