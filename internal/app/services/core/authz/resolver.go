package authz

import (
	"context"
	"fmt"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type ownershipResolver struct {
	Log         *zap.Logger
	StoreClient contracts.DocumentStoreClient
}

// NewOwnershipResolver builds a resolver over the injected store client.
// Ownership is re-derived from the store on every check; identifiers are
// attacker-controlled, so nothing here is cached.
func NewOwnershipResolver(logger *zap.Logger, storeClient contracts.DocumentStoreClient) OwnershipResolver {
	return &ownershipResolver{
		Log:         logger,
		StoreClient: storeClient,
	}
}

func (r *ownershipResolver) IsTherapistOwnerOfPatient(ctx context.Context, therapistID, patientID string) bool {
	owningTherapistID, ok := r.resolvePatientTherapist(ctx, patientID)
	if !ok {
		return false
	}
	return owningTherapistID == therapistID
}

func (r *ownershipResolver) IsOwnerOfTherapist(ctx context.Context, ownerID, therapistID string) bool {
	therapistIDs, err := r.StoreClient.ListChildren(ctx, therapistCollectionPath(ownerID))
	if err != nil {
		r.Log.Debug("therapist collection lookup failed",
			zap.String(constvars.LoggingOwnerIDKey, ownerID),
			zap.Error(err),
		)
		return false
	}
	for _, id := range therapistIDs {
		if id == therapistID {
			return true
		}
	}
	return false
}

// IsOwnerOfPatient walks the transitive edge: the patient must resolve
// to some therapist AND that therapist must be listed under the owner.
func (r *ownershipResolver) IsOwnerOfPatient(ctx context.Context, ownerID, patientID string) bool {
	owningTherapistID, ok := r.resolvePatientTherapist(ctx, patientID)
	if !ok {
		return false
	}
	return r.IsOwnerOfTherapist(ctx, ownerID, owningTherapistID)
}

func (r *ownershipResolver) resolvePatientTherapist(ctx context.Context, patientID string) (string, bool) {
	doc, err := r.StoreClient.Get(ctx, constvars.ResourcePatients, patientID)
	if err != nil {
		r.Log.Debug("patient lookup failed",
			zap.String(constvars.LoggingPatientKey, patientID),
			zap.Error(err),
		)
		return "", false
	}
	if doc == nil {
		return "", false
	}
	therapistID, ok := doc["therapist_id"].(string)
	if !ok || therapistID == "" {
		return "", false
	}
	return therapistID, true
}

func therapistCollectionPath(ownerID string) string {
	return fmt.Sprintf("%s/%s/%s", constvars.ResourceOwners, ownerID, constvars.ResourceTherapists)
}
