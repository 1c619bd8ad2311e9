package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken токен не прошел проверку подписи, срока или формата
	ErrInvalidToken = errors.New("authtoken: invalid token")

	// ErrEmptySecret секрет подписи не задан
	ErrEmptySecret = errors.New("authtoken: empty signing secret")
)

// Claims полезная нагрузка сессионного токена
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer выпускает и проверяет HS256 токены
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer создает Issuer
func NewIssuer(secret string, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue подписывает токен для пользователя
func (i *Issuer) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("authtoken: sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse проверяет токен и возвращает id пользователя и email
func (i *Issuer) Parse(tokenStr string) (uuid.UUID, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: bad subject: %v", ErrInvalidToken, err)
	}

	return userID, claims.Email, nil
}
