package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pos_cafe/config"
)

const (
	SessionCookieName    = "session_token"
	SessionMaxAgeSeconds = 60 * 60 * 24 * 7
)

const devSessionSecret = "dev-only-session-secret-change-me"

// SessionPayload is the whole server-side session state: nothing is stored,
// expiry is the only invalidation besides the client dropping the cookie.
type SessionPayload struct {
	Uid uint  `json:"uid"`
	Exp int64 `json:"exp"`
}

func sessionSecret() (string, error) {
	if secret := strings.TrimSpace(config.Config("SESSION_SECRET")); secret != "" {
		return secret, nil
	}
	if config.IsProduction() {
		return "", errors.New("SESSION_SECRET must be set in production")
	}
	return devSessionSecret, nil
}

// CheckSessionSecret is called at startup so a production deployment without
// a secret refuses to boot instead of signing tokens with a known default.
func CheckSessionSecret() error {
	_, err := sessionSecret()
	return err
}

func signSegment(secret, segment string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(segment))
	return mac.Sum(nil)
}

// CreateSessionToken mints base64url(payload).base64url(signature), both
// segments unpadded. The HMAC covers the encoded payload segment bytes.
func CreateSessionToken(userID uint) (string, error) {
	secret, err := sessionSecret()
	if err != nil {
		return "", err
	}

	payload := SessionPayload{
		Uid: userID,
		Exp: time.Now().Unix() + SessionMaxAgeSeconds,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	segment := base64.RawURLEncoding.EncodeToString(raw)
	signature := base64.RawURLEncoding.EncodeToString(signSegment(secret, segment))
	return segment + "." + signature, nil
}

// VerifySessionToken returns the payload for a well-signed, unexpired token.
// Every failure mode collapses into the same (nil, false) so callers cannot
// tell why a token was rejected.
func VerifySessionToken(token string) (*SessionPayload, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}

	secret, err := sessionSecret()
	if err != nil {
		return nil, false
	}

	provided, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, false
	}
	if !hmac.Equal(provided, signSegment(secret, parts[0])) {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, false
	}

	var payload SessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Uid == 0 {
		return nil, false
	}
	if payload.Exp <= time.Now().Unix() {
		return nil, false
	}

	return &payload, true
}
