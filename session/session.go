package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
)

// DefaultTTL bounds a session's lifetime when none is configured.
const DefaultTTL = 72 * time.Hour

// ErrUnauthenticated means the presented token is missing, expired, or no
// longer the user's active session.
var ErrUnauthenticated = errors.New("session: unauthenticated")

// Service issues and validates session tokens. A user has at most one valid
// token at a time: Issue overwrites the stored token, so a login elsewhere
// invalidates the prior session.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL is the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a fresh token and stores it as the user's current session.
// The jti claim keeps two logins in the same second distinct.
func (s *Service) Issue(db *gorm.DB, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("token", token).Error; err != nil {
		return "", err
	}
	user.Token = token
	return token, nil
}

// Validate resolves a token to its user. The signature check catches
// garbage and expiry; the stored-token lookup enforces that only the most
// recently issued session validates.
func (s *Service) Validate(db *gorm.DB, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	var user models.User
	if err := db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &user, nil
}

// Revoke clears the user's stored token. Revoking an already-revoked
// session is a no-op.
func (s *Service) Revoke(db *gorm.DB, userID uint) error {
	return db.Model(&models.User{}).Where("id = ?", userID).Update("token", "").Error
}
