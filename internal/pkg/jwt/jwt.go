package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
)

var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
)

// Identity is the decoded payload of a verified bearer token.
type Identity struct {
	UserID   string
	Role     auth.Role
	IssuedAt time.Time
}

type Service interface {
	// Issue signs a bearer token for userID scoped to role, expiring after
	// the configured window (7 days by default).
	Issue(userID string, role auth.Role) (token string, err error)
	// Verify checks signature and expiry and decodes the identity. Failures
	// are exactly one of ErrTokenMalformed, ErrTokenSignatureInvalid or
	// ErrTokenExpired.
	Verify(tokenString string) (Identity, error)
}

type JWTService struct {
	secretKey  []byte
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expiration time.Duration) *JWTService {
	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) Issue(userID string, role auth.Role) (string, error) {
	now := time.Now()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":   userID,
		"role":      string(role),
		"type":      "access",
		"issued_at": now.UnixMilli(),
		"exp":       now.Add(j.expiration).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *JWTService) Verify(tokenString string) (Identity, error) {
	// Parse without verifying first, to tell a garbled token apart from a
	// well-formed one carrying a bad signature.
	if _, err := jwt.Parse([]byte(tokenString), jwt.WithVerify(false), jwt.WithValidate(false)); err != nil {
		return Identity{}, ErrTokenMalformed
	}

	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, j.secretKey),
		jwt.WithValidate(false),
	)
	if err != nil {
		return Identity{}, ErrTokenSignatureInvalid
	}

	if err := jwt.Validate(token, jwt.WithAcceptableSkew(30*time.Second)); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenMalformed
	}

	return identityFromToken(token)
}

func identityFromToken(token jwt.Token) (Identity, error) {
	userIDVal, ok := token.Get("user_id")
	if !ok {
		return Identity{}, ErrTokenMalformed
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return Identity{}, ErrTokenMalformed
	}

	roleVal, ok := token.Get("role")
	if !ok {
		return Identity{}, ErrTokenMalformed
	}
	roleStr, ok := roleVal.(string)
	if !ok || !auth.ValidRole(auth.Role(roleStr)) {
		return Identity{}, ErrTokenMalformed
	}

	identity := Identity{
		UserID: userID,
		Role:   auth.Role(roleStr),
	}

	if issuedAtVal, ok := token.Get("issued_at"); ok {
		switch v := issuedAtVal.(type) {
		case int64:
			identity.IssuedAt = time.UnixMilli(v)
		case float64:
			identity.IssuedAt = time.UnixMilli(int64(v))
		}
	}

	return identity, nil
}
