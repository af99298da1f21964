package auth // package auth provides token issuance and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Sentinel errors returned by token verification. Handlers map both to an
// HTTP 401; they stay distinct so callers and tests can tell a bad signature
// apart from a token that merely aged out.
var (
	ErrMissingSecret = errors.New("token secret not configured")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
)

// Identity is the result of verifying an access token: the user it was
// issued to and the role embedded at issuance. The role is not re-checked
// against the database during the token's lifetime, so a role change takes
// up to one access-token TTL to propagate.
type Identity struct {
	UserID uint64
	Role   string
}

// AccessToken represents a signed JWT along with its expiry. The Token field
// contains the serialized JWT string; Exp stores the UTC expiration time.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// TokenService signs and verifies the two token kinds. Access and refresh
// tokens use distinct secrets so that a leaked refresh secret cannot be used
// to mint access tokens and vice versa. Verification is stateless: no store
// lookup, no revocation list.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService builds a TokenService from the two signing secrets and the
// configured lifetimes. An empty secret is refused here so that the server
// fails at startup rather than on the first login.
func NewTokenService(accessSecret, refreshSecret string, accessTTLMin, refreshTTLDays int) (*TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     time.Duration(accessTTLMin) * time.Minute,
		refreshTTL:    time.Duration(refreshTTLDays) * 24 * time.Hour,
	}, nil
}

// IssueAccess signs an HS256 JWT carrying the user ID and role. The claims
// are sub, role, exp and iat.
func (s *TokenService) IssueAccess(userID uint64, role string) (AccessToken, error) {
	return s.sign(jwt.MapClaims{"sub": userID, "role": role}, s.accessSecret, s.accessTTL)
}

// IssueRefresh signs an HS256 JWT carrying only the user ID. Refresh tokens
// are used solely to mint new access tokens and are not rotated or tracked
// server-side.
func (s *TokenService) IssueRefresh(userID uint64) (AccessToken, error) {
	return s.sign(jwt.MapClaims{"sub": userID}, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) sign(claims jwt.MapClaims, secret []byte, ttl time.Duration) (AccessToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims["exp"] = exp.Unix()
	claims["iat"] = time.Now().UTC().Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccess validates an access token and returns the embedded identity.
// It returns ErrTokenExpired for a correctly signed but aged-out token and
// ErrTokenInvalid for everything else.
func (s *TokenService) VerifyAccess(raw string) (Identity, error) {
	claims, err := parse(raw, s.accessSecret)
	if err != nil {
		return Identity{}, err
	}
	id, ok := subject(claims)
	if !ok {
		return Identity{}, ErrTokenInvalid
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{UserID: id, Role: role}, nil
}

// VerifyRefresh validates a refresh token and returns the user ID it was
// issued to. Failure modes mirror VerifyAccess.
func (s *TokenService) VerifyRefresh(raw string) (uint64, error) {
	claims, err := parse(raw, s.refreshSecret)
	if err != nil {
		return 0, err
	}
	id, ok := subject(claims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	return id, nil
}

// parse validates the signature and standard claims and returns the claim
// map. Only HMAC-signed tokens are accepted.
func parse(raw string, secret []byte) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// subject extracts the sub claim as a uint64. Numeric JSON values decode as
// float64, so both representations are handled.
func subject(claims jwt.MapClaims) (uint64, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		return uint64(v), true
	case uint64:
		return v, true
	}
	return 0, false
}
