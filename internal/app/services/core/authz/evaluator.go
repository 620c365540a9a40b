package authz

import (
	"context"
	"fmt"
	"practicare-service/internal/pkg/constvars"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type policyEvaluator struct {
	Log      *zap.Logger
	Resolver OwnershipResolver
}

func NewPolicyEvaluator(logger *zap.Logger, resolver OwnershipResolver) PolicyEvaluator {
	return &policyEvaluator{
		Log:      logger,
		Resolver: resolver,
	}
}

type subResult struct {
	allowed bool
	reason  string
}

func denied() subResult {
	return subResult{allowed: false, reason: constvars.ErrClientNotAuthorized}
}

func allowed() subResult {
	return subResult{allowed: true}
}

// Evaluate combines one sub-check per identifier present into a single
// all-or-nothing Decision. Sub-checks run concurrently and are all
// awaited before the Decision is produced; a single failed sub-check
// denies the whole request.
func (e *policyEvaluator) Evaluate(ctx context.Context, principal Principal, identifiers ResourceIdentifiers) Decision {
	if principal.Role != RoleOwner && principal.Role != RoleTherapist {
		return Decision{Allowed: false, Reason: constvars.ErrClientNotAuthorized}
	}

	var checks []func(ctx context.Context) subResult

	if identifiers.OwnerID != "" {
		ownerID := identifiers.OwnerID
		checks = append(checks, func(ctx context.Context) subResult {
			return e.checkOwnerIdentifier(principal, ownerID)
		})
	}
	if identifiers.TherapistID != "" {
		therapistID := identifiers.TherapistID
		checks = append(checks, func(ctx context.Context) subResult {
			return e.checkTherapistIdentifier(ctx, principal, therapistID)
		})
	}
	if identifiers.PatientID != "" {
		patientID := identifiers.PatientID
		checks = append(checks, func(ctx context.Context) subResult {
			return e.checkPatientIdentifier(ctx, principal, patientID)
		})
	}

	// Routes without ownership-relevant identifiers are reachable only
	// once authentication already passed.
	if len(checks) == 0 {
		return Decision{Allowed: true}
	}

	results := make([]subResult, len(checks))
	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, check func(ctx context.Context) subResult) {
			defer wg.Done()
			results[i] = check(ctx)
		}(i, check)
	}
	wg.Wait()

	reason := constvars.ErrClientNotAuthorized
	passed := true
	for _, result := range results {
		if result.allowed {
			continue
		}
		passed = false
		if result.reason != constvars.ErrClientNotAuthorized {
			reason = result.reason
		}
	}
	if !passed {
		e.Log.Debug("policy denied request",
			zap.String(constvars.LoggingUserIDKey, principal.UserID),
			zap.String(constvars.LoggingRoleKey, principal.Role.String()),
		)
		return Decision{Allowed: false, Reason: reason}
	}
	return Decision{Allowed: true}
}

func (e *policyEvaluator) checkOwnerIdentifier(principal Principal, ownerID string) subResult {
	// A therapist has no ownerId-scoped resources.
	if principal.Role != RoleOwner {
		return denied()
	}
	if ownerID != principal.UserID {
		return denied()
	}
	return allowed()
}

func (e *policyEvaluator) checkTherapistIdentifier(ctx context.Context, principal Principal, therapistID string) subResult {
	therapistIDs := strings.Split(therapistID, therapistPairSeparator)

	if principal.Role == RoleTherapist {
		// Self-match only; each occurrence must match and the results AND.
		for _, id := range therapistIDs {
			if id != principal.UserID {
				return denied()
			}
		}
		return allowed()
	}

	for _, id := range therapistIDs {
		if !e.Resolver.IsOwnerOfTherapist(ctx, principal.UserID, id) {
			if len(therapistIDs) == 2 {
				return subResult{
					allowed: false,
					reason:  fmt.Sprintf(constvars.ErrClientReassignNotPermittedFormat, principal.UserID, therapistIDs[0], therapistIDs[1]),
				}
			}
			return denied()
		}
	}
	return allowed()
}

func (e *policyEvaluator) checkPatientIdentifier(ctx context.Context, principal Principal, patientID string) subResult {
	if principal.Role == RoleTherapist {
		if !e.Resolver.IsTherapistOwnerOfPatient(ctx, principal.UserID, patientID) {
			return denied()
		}
		return allowed()
	}
	if !e.Resolver.IsOwnerOfPatient(ctx, principal.UserID, patientID) {
		return denied()
	}
	return allowed()
}
