package authz

import (
	"context"
	"practicare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOwnershipResolver struct {
	mock.Mock
}

func (m *MockOwnershipResolver) IsTherapistOwnerOfPatient(ctx context.Context, therapistID, patientID string) bool {
	args := m.Called(ctx, therapistID, patientID)
	return args.Bool(0)
}

func (m *MockOwnershipResolver) IsOwnerOfTherapist(ctx context.Context, ownerID, therapistID string) bool {
	args := m.Called(ctx, ownerID, therapistID)
	return args.Bool(0)
}

func (m *MockOwnershipResolver) IsOwnerOfPatient(ctx context.Context, ownerID, patientID string) bool {
	args := m.Called(ctx, ownerID, patientID)
	return args.Bool(0)
}

func TestPolicyEvaluator_RoleRules(t *testing.T) {
	ctx := context.Background()

	t.Run("guest is denied regardless of identifiers", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx, Principal{UserID: "someone", Role: RoleGuest}, ResourceIdentifiers{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, constvars.ErrClientNotAuthorized, decision.Reason)
	})

	t.Run("unrecognized role claim parses to guest", func(t *testing.T) {
		assert.Equal(t, RoleGuest, ParseRole("Superadmin"))
		assert.Equal(t, RoleOwner, ParseRole("owner"))
		assert.Equal(t, RoleTherapist, ParseRole("THERAPIST"))
	})

	t.Run("owner matches own ownerId", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{OwnerID: "o1-id"},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("owner denied on another ownerId", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{OwnerID: "o2-id"},
		)
		assert.False(t, decision.Allowed)
		assert.Equal(t, constvars.ErrClientNotAuthorized, decision.Reason)
	})

	t.Run("therapist denied on any ownerId", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1t1-id", Role: RoleTherapist},
			ResourceIdentifiers{OwnerID: "o1-id"},
		)
		assert.False(t, decision.Allowed)
	})

	t.Run("therapist self-matches therapistId", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1t1-id", Role: RoleTherapist},
			ResourceIdentifiers{TherapistID: "o1t1-id"},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("therapist denied on another therapistId", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1t1-id", Role: RoleTherapist},
			ResourceIdentifiers{TherapistID: "o2t1-id"},
		)
		assert.False(t, decision.Allowed)
	})

	t.Run("owner resolves therapistId through ownership", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o1t1-id").Return(true)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{TherapistID: "o1t1-id"},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("therapist resolves patientId through assignment", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsTherapistOwnerOfPatient", mock.Anything, "o1t1-id", "p1").Return(true)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1t1-id", Role: RoleTherapist},
			ResourceIdentifiers{PatientID: "p1"},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("owner denied on an unowned patientId", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfPatient", mock.Anything, "o1-id", "p1").Return(false)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{PatientID: "p1"},
		)
		assert.False(t, decision.Allowed)
	})
}

func TestPolicyEvaluator_CombinedChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("no identifiers allows authenticated principal", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("all present identifiers must pass", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o1t1-id").Return(true)
		resolver.On("IsOwnerOfPatient", mock.Anything, "o1-id", "p2").Return(false)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{OwnerID: "o1-id", TherapistID: "o1t1-id", PatientID: "p2"},
		)
		assert.False(t, decision.Allowed)
	})

	t.Run("evaluation is idempotent", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfPatient", mock.Anything, "o1-id", "p1").Return(true)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		identifiers := ResourceIdentifiers{OwnerID: "o1-id", PatientID: "p1"}
		principal := Principal{UserID: "o1-id", Role: RoleOwner}

		first := evaluator.Evaluate(ctx, principal, identifiers)
		second := evaluator.Evaluate(ctx, principal, identifiers)
		assert.Equal(t, first, second)
		assert.True(t, first.Allowed)
	})
}

func TestPolicyEvaluator_ReassignmentPair(t *testing.T) {
	ctx := context.Background()

	t.Run("owner reassigns between two owned therapists", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o1t1-id").Return(true)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o1t2-id").Return(true)
		resolver.On("IsOwnerOfPatient", mock.Anything, "o1-id", "p1").Return(true)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{OwnerID: "o1-id", TherapistID: "o1t1-id/o1t2-id", PatientID: "p1"},
		)
		assert.True(t, decision.Allowed)
	})

	t.Run("cross-owner pair denies with the specific reason", func(t *testing.T) {
		resolver := new(MockOwnershipResolver)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o1t1-id").Return(true)
		resolver.On("IsOwnerOfTherapist", mock.Anything, "o1-id", "o2t1-id").Return(false)
		resolver.On("IsOwnerOfPatient", mock.Anything, "o1-id", "p1").Return(true)
		evaluator := NewPolicyEvaluator(zap.NewNop(), resolver)

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1-id", Role: RoleOwner},
			ResourceIdentifiers{OwnerID: "o1-id", TherapistID: "o1t1-id/o2t1-id", PatientID: "p1"},
		)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "o1-id does not have permission to reassign between o1t1-id and o2t1-id", decision.Reason)
	})

	t.Run("therapist cannot reassign even between self", func(t *testing.T) {
		evaluator := NewPolicyEvaluator(zap.NewNop(), new(MockOwnershipResolver))

		decision := evaluator.Evaluate(ctx,
			Principal{UserID: "o1t1-id", Role: RoleTherapist},
			ResourceIdentifiers{TherapistID: "o1t1-id/o2t1-id"},
		)
		assert.False(t, decision.Allowed)
		assert.Equal(t, constvars.ErrClientNotAuthorized, decision.Reason)
	})
}
