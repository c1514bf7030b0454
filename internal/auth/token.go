package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка JWT: id пользователя и его роль
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"userType"`
	jwt.RegisteredClaims
}

var (
	jwtSecret []byte
	tokenTTL  time.Duration
)

var ErrTokenInvalid = errors.New("invalid or expired token")

// InitJWT устанавливает ключ подписи и срок жизни токенов.
// Вызывается один раз при старте, до начала обслуживания запросов.
func InitJWT(secret string, ttlHours int) error {
	if secret == "" {
		return errors.New("jwt secret must not be empty")
	}
	jwtSecret = []byte(secret)
	tokenTTL = time.Duration(ttlHours) * time.Hour
	return nil
}

// GenerateToken выпускает подписанный HS256-токен с заданным сроком жизни
func GenerateToken(userID, role string) (string, error) {
	return GenerateTokenWithTTL(userID, role, tokenTTL)
}

// GenerateTokenWithTTL выпускает токен с явным сроком жизни.
// Отрицательный ttl дает уже истекший токен (используется в тестах).
func GenerateTokenWithTTL(userID, role string, ttl time.Duration) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("jwt is not initialized")
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken проверяет подпись и срок действия токена.
// Любой дефект (битый токен, чужая подпись, истекший срок)
// сворачивается в одну ошибку ErrTokenInvalid.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
