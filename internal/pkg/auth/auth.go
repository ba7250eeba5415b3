package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"courier-rating/internal/entities"
)

var (
	ErrEmptySecret  = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Principal - аутентифицированный пользователь, восстановленный из JWT.
type Principal struct {
	UserID   string
	Username string
	Role     entities.RoleType
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

type claims struct {
	Username string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken подписывает HS256-токен для пользователя на срок ttl.
func IssueToken(secret string, ttl time.Duration, userEntity entities.User) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: userEntity.Username,
		Role:     userEntity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userEntity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок токена и возвращает Principal.
func ParseToken(secret, tokenStr string) (*Principal, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	c, _ := token.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Username == "" {
		return nil, ErrInvalidToken
	}

	role := entities.RoleType(strings.ToLower(c.Role))
	if !role.IsValid() {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     role,
	}, nil
}

// ParseBearer извлекает токен из заголовка Authorization.
func ParseBearer(secret, header string) (*Principal, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}
	return ParseToken(secret, strings.TrimSpace(parts[1]))
}
