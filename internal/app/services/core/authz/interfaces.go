package authz

import "context"

type OwnershipResolver interface {
	IsTherapistOwnerOfPatient(ctx context.Context, therapistID, patientID string) bool
	IsOwnerOfTherapist(ctx context.Context, ownerID, therapistID string) bool
	IsOwnerOfPatient(ctx context.Context, ownerID, patientID string) bool
}

type PolicyEvaluator interface {
	Evaluate(ctx context.Context, principal Principal, identifiers ResourceIdentifiers) Decision
}
