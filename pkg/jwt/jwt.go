package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claims")
)

// DefaultTTL is the lifetime of every issued token.
const DefaultTTL = 10 * time.Hour

// Issuer-managed registered claims. They are stamped on issuance and
// stripped again on verification, so the caller gets back exactly what it
// handed in.
const (
	claimExpiresAt = "exp"
	claimIssuedAt  = "iat"
)

// Identity is the caller-supplied claim set embedded into a token.
// It is opaque to the token layer; only Email is interpreted, by the
// ownership check.
type Identity map[string]interface{}

// Email returns the "email" claim, or "" when it is absent or not a string.
func (i Identity) Email() string {
	email, _ := i["email"].(string)
	return email
}

// TokenManager handles JWT token generation and validation
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a TokenManager.
type Option func(*TokenManager)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(tm *TokenManager) {
		tm.now = now
	}
}

// NewTokenManager creates a new TokenManager. A non-positive ttl falls back
// to DefaultTTL.
func NewTokenManager(secret string, ttl time.Duration, opts ...Option) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	tm := &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

// Issue signs the identity into an HS256 token that expires ttl after now.
// The identity is trusted as-is; any exp/iat it carries is overwritten.
func (tm *TokenManager) Issue(identity Identity) (string, error) {
	now := tm.now()

	claims := make(jwt.MapClaims, len(identity)+2)
	for k, v := range identity {
		claims[k] = v
	}
	claims[claimIssuedAt] = jwt.NewNumericDate(now)
	claims[claimExpiresAt] = jwt.NewNumericDate(now.Add(tm.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify validates the signature and expiry of a token and returns the
// identity it was issued for.
func (tm *TokenManager) Verify(tokenString string) (Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	},
		jwt.WithTimeFunc(tm.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidClaim
	}

	identity := make(Identity, len(claims))
	for k, v := range claims {
		if k == claimExpiresAt || k == claimIssuedAt {
			continue
		}
		identity[k] = v
	}

	return identity, nil
}

// TTL returns the token lifetime
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
