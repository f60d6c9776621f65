// Package identity extracts the caller identity from a bearer token.
//
// By default the token payload is decoded but the signature is NOT verified;
// the upstream identity provider is trusted to have issued it and the API
// gateway in front of the service is expected to reject forgeries. Supplying
// a secret to NewDecoder switches on HS256 verification.
package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingCredential means no usable Authorization header was present.
	ErrMissingCredential = errors.New("authorization header is required")
	// ErrInvalidCredential means a token was present but could not be decoded.
	ErrInvalidCredential = errors.New("invalid token")
)

// Identity is the caller as asserted by the token. It is derived per request
// and never persisted.
type Identity struct {
	UserID   string
	Username string
}

// TokenFromRequest pulls the raw bearer token out of the request headers.
// The "Bearer " prefix is optional.
func TokenFromRequest(req *http.Request) (string, error) {
	authz := req.Header.Get("Authorization")
	if authz == "" {
		return "", ErrMissingCredential
	}
	token := strings.TrimPrefix(authz, "Bearer ")
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

// Decoder turns raw tokens into identities.
type Decoder struct {
	secret []byte
}

// NewDecoder returns a decoder. With an empty secret the decoder trusts the
// token payload as presented; with a secret it verifies an HS256 signature.
func NewDecoder(secret string) *Decoder {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Decoder{secret: key}
}

// Verifying reports whether signature verification is enabled.
func (d *Decoder) Verifying() bool { return d.secret != nil }

// Decode parses the token and extracts the caller identity. UserID comes
// from the "sub" claim; Username falls back through "cognito:username",
// "email", and finally "unknown".
func (d *Decoder) Decode(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if d.secret != nil {
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return d.secret, nil
		})
		if err != nil || !parsed.Valid {
			return Identity{}, ErrInvalidCredential
		}
	} else {
		parser := jwt.NewParser()
		if _, _, err := parser.ParseUnverified(token, claims); err != nil {
			return Identity{}, ErrInvalidCredential
		}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, ErrInvalidCredential
	}
	return Identity{UserID: sub, Username: usernameClaim(claims)}, nil
}

// FromRequest combines extraction and decoding.
func (d *Decoder) FromRequest(req *http.Request) (Identity, error) {
	token, err := TokenFromRequest(req)
	if err != nil {
		return Identity{}, err
	}
	return d.Decode(token)
}

func usernameClaim(claims jwt.MapClaims) string {
	if s, _ := claims["cognito:username"].(string); s != "" {
		return s
	}
	if s, _ := claims["email"].(string); s != "" {
		return s
	}
	return "unknown"
}
