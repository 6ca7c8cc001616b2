package sessions

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"docledger/internal/common"
)

// Manager issues and resolves session tokens. The token handed to the client
// is an HS256 JWT carrying only the session id; the store lookup stays
// authoritative, so revoking the server-side session invalidates the token no
// matter what its claims say.
type Manager struct {
	store     Store
	secretKey []byte
	ttl       time.Duration
}

func NewManager(store Store, secretKey string, ttl time.Duration) *Manager {
	return &Manager{store: store, secretKey: []byte(secretKey), ttl: ttl}
}

// Open registers a new session for userID and returns the signed token.
func (m *Manager) Open(ctx context.Context, userID uint) (string, error) {
	sid := uuid.NewString()
	if err := m.store.Put(ctx, sid, userID, m.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		m.store.Delete(ctx, sid)
		return "", err
	}
	return signed, nil
}

// Resolve maps a client token back to the user id of its live session.
// Malformed or unsigned tokens and sessions missing from the store both
// report common.ErrUnauthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (uint, error) {
	sid, err := m.parseSID(token)
	if err != nil {
		return 0, common.ErrUnauthenticated
	}
	userID, err := m.store.Get(ctx, sid)
	if err != nil {
		return 0, common.ErrUnauthenticated
	}
	return userID, nil
}

// Close terminates the session carried by the token. Unknown tokens are a
// no-op, so logout is idempotent.
func (m *Manager) Close(ctx context.Context, token string) error {
	sid, err := m.parseSID(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, sid)
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) parseSID(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", common.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", common.ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", common.ErrInvalidToken
	}
	return sid, nil
}
