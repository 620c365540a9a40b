package middlewares

import (
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/services/core/authz"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	RevocationChecker contracts.RevocationChecker
	PolicyEvaluator   authz.PolicyEvaluator
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	revocationChecker contracts.RevocationChecker,
	policyEvaluator authz.PolicyEvaluator,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               logger,
		RevocationChecker: revocationChecker,
		PolicyEvaluator:   policyEvaluator,
		InternalConfig:    internalConfig,
	}
}
