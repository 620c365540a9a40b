package identity

import (
	"context"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type revocationChecker struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewRevocationChecker(logger *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.RevocationChecker {
	return &revocationChecker{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// Check consults the identity provider's revocation state for an
// already-verified token. Any failure along the way is TokenInvalid,
// never TokenValid.
func (c *revocationChecker) Check(ctx context.Context, rawToken string) (contracts.TokenState, error) {
	claims, err := utils.ParseVerifiedToken(rawToken, c.InternalConfig.JWT.Secret)
	if err != nil {
		return contracts.TokenInvalid, err
	}
	if claims.TokenID == "" {
		return contracts.TokenInvalid, nil
	}

	revoked, err := c.RedisRepository.IsSetMember(ctx, RevokedTokenSetKey, claims.TokenID)
	if err != nil {
		return contracts.TokenInvalid, err
	}
	if revoked {
		return contracts.TokenRevoked, nil
	}
	return contracts.TokenValid, nil
}
