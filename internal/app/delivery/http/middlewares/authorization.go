package middlewares

import (
	"context"
	"net/http"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/services/core/authz"
	"practicare-service/internal/pkg/constvars"
	"practicare-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Authorize gates every identifier-bearing route. Per request:
// bearer extraction, revocation check, claims extraction, policy
// evaluation. Every negative branch is a terminal deny; nothing is
// retried.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.InternalConfig.Authz.BypassAuth {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
			m.denyRequest(w, r, "token_missing", constvars.ErrClientNotAuthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		state, err := m.RevocationChecker.Check(ctx, token)
		if state != contracts.TokenValid {
			m.Log.Warn("token failed revocation check",
				zap.String(constvars.LoggingStageKey, state.String()),
				zap.Error(err),
			)
			m.denyRequest(w, r, "token_"+state.String(), constvars.ErrClientNotAuthorized)
			return
		}

		claims, err := utils.ParseVerifiedToken(token, m.InternalConfig.JWT.Secret)
		if err != nil || claims.UserID == "" || claims.Role == "" {
			m.denyRequest(w, r, "claims_malformed", constvars.ErrClientMalformedToken)
			return
		}

		principal := authz.Principal{
			UserID: claims.UserID,
			Role:   authz.ParseRole(claims.Role),
		}
		therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
		if toTherapistID := chi.URLParam(r, constvars.URLParamToTherapistID); toTherapistID != "" {
			// Reassignment routes carry a from/to therapist pair split
			// across two path segments.
			therapistID = therapistID + "/" + toTherapistID
		}
		identifiers := authz.ResourceIdentifiers{
			OwnerID:     chi.URLParam(r, constvars.URLParamOwnerID),
			TherapistID: therapistID,
			PatientID:   chi.URLParam(r, constvars.URLParamPatientID),
		}

		decision := m.PolicyEvaluator.Evaluate(ctx, principal, identifiers)
		if !decision.Allowed {
			m.Log.Warn("policy denied request",
				zap.String(constvars.LoggingUserIDKey, principal.UserID),
				zap.String(constvars.LoggingRoleKey, principal.Role.String()),
				zap.String(constvars.LoggingOwnerIDKey, identifiers.OwnerID),
				zap.String(constvars.LoggingTherapistKey, identifiers.TherapistID),
				zap.String(constvars.LoggingPatientKey, identifiers.PatientID),
			)
			m.denyRequest(w, r, "policy_denied", decision.Reason)
			return
		}

		ctxWithPrincipal := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctxWithPrincipal))
	})
}

// denyRequest writes the fixed-contract denial: 401, plain-text reason
// body, and the same reason on the diagnostic header. Stage detail goes
// to the log only.
func (m *Middlewares) denyRequest(w http.ResponseWriter, r *http.Request, stage, reason string) {
	m.Log.Debug("authorization denied",
		zap.String(constvars.LoggingStageKey, stage),
		zap.String(constvars.LoggingReasonKey, reason),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)
	w.Header().Set(constvars.HeaderXCustomAuthHeader, reason)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(constvars.StatusUnauthorized)
	w.Write([]byte(reason))
}

// PrincipalFromContext returns the principal stored by Authorize.
func PrincipalFromContext(ctx context.Context) (authz.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(authz.Principal)
	return principal, ok
}
