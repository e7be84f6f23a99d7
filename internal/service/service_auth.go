package service

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// authService verifies bearer tokens presented to the document server. Tokens
// are minted by the identity provider that owns tenant accounts; the server
// only checks signature, issuer and expiry.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens whose issuer does not
	// match this value are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the server auth settings.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed,
// missing subject) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "authService.ParseToken").
			Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.TenantID == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
