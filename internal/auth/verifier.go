package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// RealmAccess mirrors the realm role block issued by the identity provider
type RealmAccess struct {
	Roles []string `json:"roles"`
}

// Claims is the subset of the identity provider's access token the BFF reads
type Claims struct {
	PreferredUsername string      `json:"preferred_username,omitempty"`
	Email             string      `json:"email,omitempty"`
	RealmAccess       RealmAccess `json:"realm_access"`
	jwt.RegisteredClaims
}

// VerifierConfig selects the verification key and optional claim checks.
// Exactly one of Secret and PublicKeyPEM must be set.
type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
	Audience     string
	Leeway       time.Duration
}

// Verifier validates access tokens and turns them into identities
type Verifier struct {
	parser  *jwt.Parser
	keyFunc jwt.Keyfunc
}

// NewVerifier builds a Verifier for either HMAC or RSA signed tokens
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	pemKey := strings.TrimSpace(cfg.PublicKeyPEM)

	switch {
	case secret == "" && pemKey == "":
		return nil, errors.New(ErrMsgNoVerificationKey)
	case secret != "" && pemKey != "":
		return nil, errors.New(ErrMsgBothKeys)
	}

	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}

	v := &Verifier{}
	if secret != "" {
		key := []byte(secret)
		opts = append(opts, jwt.WithValidMethods(HMACMethods))
		v.keyFunc = func(*jwt.Token) (interface{}, error) { return key, nil }
	} else {
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		opts = append(opts, jwt.WithValidMethods(RSAMethods))
		v.keyFunc = func(*jwt.Token) (interface{}, error) { return pub, nil }
	}
	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify checks the token signature and claims. Every failure wraps
// domain.ErrUnauthenticated.
func (v *Verifier) Verify(raw string) (*domain.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingToken)
	}

	claims := &Claims{}
	if _, err := v.parser.ParseWithClaims(raw, claims, v.keyFunc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingSubject)
	}

	username := claims.PreferredUsername
	if username == "" {
		username = claims.Subject
	}
	roles := make([]string, len(claims.RealmAccess.Roles))
	copy(roles, claims.RealmAccess.Roles)

	return &domain.Identity{
		UserID:   claims.Subject,
		Username: username,
		Email:    claims.Email,
		Roles:    roles,
		Token:    raw,
	}, nil
}
