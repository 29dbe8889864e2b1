package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

const CookieName = "gym_session"

var (
	ErrInvalidSession = errors.New("invalid_session")
	ErrRevoked        = errors.New("session_revoked")
)

// Claims is the decoded content of a session cookie.
type Claims struct {
	UserID    uint
	Role      account.Role
	Staff     bool
	TokenID   string
	ExpiresAt time.Time
}

type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoker Revoker
}

func NewManager(secret string, ttl time.Duration, revoker Revoker) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoker: revoker,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(u *models.User, now time.Time) (string, *Claims, error) {
	claims := &Claims{
		UserID:    u.ID,
		Role:      account.RoleOf(u),
		Staff:     u.IsStaff,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(claims.UserID), 10),
		"role":  string(claims.Role),
		"staff": claims.Staff,
		"jti":   claims.TokenID,
		"iat":   now.Unix(),
		"exp":   claims.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (m *Manager) Parse(ctx context.Context, raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	sub, _ := mc["sub"].(string)
	rawRole, _ := mc["role"].(string)
	staff, _ := mc["staff"].(bool)
	jti, _ := mc["jti"].(string)

	id, err := strconv.ParseUint(sub, 10, 64)
	role, okRole := account.ParseRole(rawRole)
	if err != nil || !okRole || jti == "" {
		return nil, ErrInvalidSession
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidSession
	}

	revoked, err := m.revoker.IsRevoked(ctx, jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevoked
	}

	return &Claims{
		UserID:    uint(id),
		Role:      role,
		Staff:     staff,
		TokenID:   jti,
		ExpiresAt: exp.Time,
	}, nil
}

// Revoke blocks the token until it would have expired anyway.
func (m *Manager) Revoke(ctx context.Context, c *Claims) error {
	return m.revoker.Revoke(ctx, c.TokenID, c.ExpiresAt)
}
