package authz

import (
	"context"
	"errors"
	"practicare-service/internal/app/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDocumentStoreClient struct {
	mock.Mock
}

func (m *MockDocumentStoreClient) Get(ctx context.Context, collectionPath, id string) (contracts.StoreDocument, error) {
	args := m.Called(ctx, collectionPath, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(contracts.StoreDocument), args.Error(1)
}

func (m *MockDocumentStoreClient) ListChildren(ctx context.Context, collectionPath string) ([]string, error) {
	args := m.Called(ctx, collectionPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestOwnershipResolver_IsTherapistOwnerOfPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("patient assigned to the therapist", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(contracts.StoreDocument{"therapist_id": "o1t1-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.True(t, resolver.IsTherapistOwnerOfPatient(ctx, "o1t1-id", "p1"))
	})

	t.Run("patient assigned to another therapist", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(contracts.StoreDocument{"therapist_id": "o1t1-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsTherapistOwnerOfPatient(ctx, "o2t1-id", "p1"))
	})

	t.Run("patient does not exist", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "ghost").Return(nil, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsTherapistOwnerOfPatient(ctx, "o1t1-id", "ghost"))
	})

	t.Run("patient record has no therapist edge", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(contracts.StoreDocument{"name": "Patient One"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsTherapistOwnerOfPatient(ctx, "o1t1-id", "p1"))
	})

	t.Run("store failure resolves to false", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(nil, errors.New("connection reset"))

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsTherapistOwnerOfPatient(ctx, "o1t1-id", "p1"))
	})
}

func TestOwnershipResolver_IsOwnerOfTherapist(t *testing.T) {
	ctx := context.Background()

	t.Run("therapist listed under the owner", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("ListChildren", mock.Anything, "owners/o1-id/therapists").
			Return([]string{"o1t1-id", "o1t2-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.True(t, resolver.IsOwnerOfTherapist(ctx, "o1-id", "o1t1-id"))
	})

	t.Run("therapist belongs to a different owner", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("ListChildren", mock.Anything, "owners/o1-id/therapists").
			Return([]string{"o1t1-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsOwnerOfTherapist(ctx, "o1-id", "o2t1-id"))
	})

	t.Run("owner has no therapists", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("ListChildren", mock.Anything, "owners/o3-id/therapists").
			Return([]string{}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsOwnerOfTherapist(ctx, "o3-id", "o1t1-id"))
	})

	t.Run("store failure resolves to false", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("ListChildren", mock.Anything, "owners/o1-id/therapists").
			Return(nil, errors.New("context deadline exceeded"))

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsOwnerOfTherapist(ctx, "o1-id", "o1t1-id"))
	})
}

func TestOwnershipResolver_IsOwnerOfPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("patient reachable through an owned therapist", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(contracts.StoreDocument{"therapist_id": "o1t1-id"}, nil)
		storeClient.On("ListChildren", mock.Anything, "owners/o1-id/therapists").
			Return([]string{"o1t1-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.True(t, resolver.IsOwnerOfPatient(ctx, "o1-id", "p1"))
	})

	t.Run("patient assigned to an unowned therapist", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").
			Return(contracts.StoreDocument{"therapist_id": "o2t1-id"}, nil)
		storeClient.On("ListChildren", mock.Anything, "owners/o1-id/therapists").
			Return([]string{"o1t1-id"}, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsOwnerOfPatient(ctx, "o1-id", "p1"))
	})

	t.Run("first hop failure short-circuits to false", func(t *testing.T) {
		storeClient := new(MockDocumentStoreClient)
		storeClient.On("Get", mock.Anything, "patients", "p1").Return(nil, nil)

		resolver := NewOwnershipResolver(zap.NewNop(), storeClient)
		assert.False(t, resolver.IsOwnerOfPatient(ctx, "o1-id", "p1"))
		storeClient.AssertNotCalled(t, "ListChildren", mock.Anything, mock.Anything)
	})
}
