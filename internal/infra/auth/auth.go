package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GuestPrefix префикс субъекта гостевого токена
const GuestPrefix = "guest|"

// ErrInvalidToken токен не прошел проверку
var ErrInvalidToken = errors.New("invalid token")

// Claims содержимое гостевого токена
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService выдает и проверяет HS256 токены гостей веб-клиента
type AuthService struct {
	hmac   []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService создает сервис с секретом подписи
func NewAuthService(secret, issuer string, ttl time.Duration) *AuthService {
	return &AuthService{hmac: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// IssueGuest создает нового гостя и возвращает его субъект и токен
func (a *AuthService) IssueGuest() (string, string, error) {
	sub := GuestPrefix + uuid.New().String()
	tok, err := a.IssueJWT(sub)
	if err != nil {
		return "", "", err
	}
	return sub, tok, nil
}

// IssueJWT подписывает токен для субъекта
func (a *AuthService) IssueJWT(sub string) (string, error) {
	now := a.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(a.hmac)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse проверяет подпись, срок действия и издателя
func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

// JWTMiddleware пропускает только запросы с действительным Bearer токеном и кладет субъект в контекст
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				httpError.ErrorResponse(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				httpError.ErrorResponse(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}

type ctxKey string

const ctxKeySub ctxKey = "sub"

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySub); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
