package app

import (
	"fmt"
	"log/slog"

	"github.com/lubana/membership/pkg/cryptox"
	"github.com/lubana/membership/pkg/jwtx"
)

// InitSigningKey loads the Ed25519 signing key from cfg.SigningKeyFile,
// generating it on first start. Tokens survive restarts as long as the file
// does.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.Signer, *jwtx.Verifier, error) {
	pemKey, err := cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load signing key: %w", err)
	}

	signer, err := jwtx.NewSigner("", pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse signing key: %w", err)
	}
	verifier := jwtx.NewVerifier(signer.KID(), signer.PublicKey(), cfg.Issuer)

	logger.Info("signing key loaded", "kid", signer.KID(), "algorithm", "EdDSA", "issuer", cfg.Issuer)
	return signer, verifier, nil
}

// InitHasher loads the password pepper from cfg.PepperFile, generating it on
// first start.
func InitHasher(cfg Config) (*cryptox.Hasher, error) {
	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	return cryptox.NewHasher(pepper), nil
}
