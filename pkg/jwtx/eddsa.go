package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedKey = errors.New("jwtx: malformed key")
	ErrUnknownKID   = errors.New("jwtx: unknown kid")
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Signer signs access tokens with an Ed25519 key.
type Signer struct {
	kid string
	key ed25519.PrivateKey
}

// NewSigner loads a PKCS8 PEM encoded Ed25519 private key. An empty kid is
// derived from the public key, so it stays the same for the same key.
func NewSigner(kid string, pemKey []byte) (*Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("%w: expected PKCS8 PRIVATE KEY block", ErrMalformedKey)
	}

	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}
	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 key", ErrMalformedKey)
	}

	if kid == "" {
		sum := sha256.Sum256(key.Public().(ed25519.PublicKey))
		kid = hex.EncodeToString(sum[:8])
	}
	return &Signer{kid: kid, key: key}, nil
}

func (s *Signer) KID() string { return s.kid }

func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

// Sign returns the compact serialisation of claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK describes the verification key for publication.
func (s *Signer) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, s.PublicKey())
}

// Verifier checks tokens produced by a Signer with the same key.
type Verifier struct {
	kid    string
	pub    ed25519.PublicKey
	issuer string
	leeway time.Duration

	// Now overrides the clock used for expiry checks when set.
	Now func() time.Time
}

func NewVerifier(kid string, pub ed25519.PublicKey, issuer string) *Verifier {
	return &Verifier{kid: kid, pub: pub, issuer: issuer, leeway: 30 * time.Second}
}

// Verify parses raw, checks signature, issuer, expiry and not-before, and
// returns the claims.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.Now))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != v.kid {
			return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
		}
		return v.pub, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
