package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/services/core/authz"
	"practicare-service/internal/pkg/constvars"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-jwt-secret"

type MockRevocationChecker struct {
	mock.Mock
}

func (m *MockRevocationChecker) Check(ctx context.Context, rawToken string) (contracts.TokenState, error) {
	args := m.Called(ctx, rawToken)
	return args.Get(0).(contracts.TokenState), args.Error(1)
}

type MockPolicyEvaluator struct {
	mock.Mock
}

func (m *MockPolicyEvaluator) Evaluate(ctx context.Context, principal authz.Principal, identifiers authz.ResourceIdentifiers) authz.Decision {
	args := m.Called(ctx, principal, identifiers)
	return args.Get(0).(authz.Decision)
}

// stubResolver answers ownership checks from fixed edge sets.
type stubResolver struct {
	ownedTherapists map[string]string
	patientEdges    map[string]string
}

func (s *stubResolver) IsTherapistOwnerOfPatient(_ context.Context, therapistID, patientID string) bool {
	return s.patientEdges[patientID] == therapistID
}

func (s *stubResolver) IsOwnerOfTherapist(_ context.Context, ownerID, therapistID string) bool {
	return s.ownedTherapists[therapistID] == ownerID
}

func (s *stubResolver) IsOwnerOfPatient(_ context.Context, ownerID, patientID string) bool {
	therapistID, ok := s.patientEdges[patientID]
	if !ok {
		return false
	}
	return s.ownedTherapists[therapistID] == ownerID
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func newTestRouter(middlewareInstance *Middlewares) *chi.Mux {
	router := chi.NewRouter()
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handler reached"))
	}
	router.With(middlewareInstance.Authorize).Get("/owners/{ownerId}", handler)
	router.With(middlewareInstance.Authorize).Get("/patients/{patientId}", handler)
	router.With(middlewareInstance.Authorize).Put("/owners/{ownerId}/therapists/{therapistId}/{toTherapistId}/patients/{patientId}", handler)
	return router
}

func TestAuthorize_DenialContract(t *testing.T) {
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: testSecret}}

	t.Run("missing bearer token", func(t *testing.T) {
		middlewareInstance := NewMiddlewares(zap.NewNop(), new(MockRevocationChecker), new(MockPolicyEvaluator), internalConfig)
		router := newTestRouter(middlewareInstance)

		req := httptest.NewRequest("GET", "/owners/o1-id", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constvars.ErrClientNotAuthorized, rec.Body.String())
		assert.Equal(t, constvars.ErrClientNotAuthorized, rec.Header().Get(constvars.HeaderXCustomAuthHeader))
		assert.Equal(t, constvars.MIMETextPlainCharsetUTF8, rec.Header().Get(constvars.HeaderContentType))
	})

	t.Run("revoked token", func(t *testing.T) {
		revocationChecker := new(MockRevocationChecker)
		revocationChecker.On("Check", mock.Anything, mock.Anything).Return(contracts.TokenRevoked, nil)

		middlewareInstance := NewMiddlewares(zap.NewNop(), revocationChecker, new(MockPolicyEvaluator), internalConfig)
		router := newTestRouter(middlewareInstance)

		token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "sub": "o1-id", "role": "Owner"})
		req := httptest.NewRequest("GET", "/owners/o1-id", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constvars.ErrClientNotAuthorized, rec.Body.String())
	})

	t.Run("valid token without subject claim", func(t *testing.T) {
		revocationChecker := new(MockRevocationChecker)
		revocationChecker.On("Check", mock.Anything, mock.Anything).Return(contracts.TokenValid, nil)

		middlewareInstance := NewMiddlewares(zap.NewNop(), revocationChecker, new(MockPolicyEvaluator), internalConfig)
		router := newTestRouter(middlewareInstance)

		token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "role": "Owner"})
		req := httptest.NewRequest("GET", "/owners/o1-id", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constvars.ErrClientMalformedToken, rec.Body.String())
		assert.Equal(t, constvars.ErrClientMalformedToken, rec.Header().Get(constvars.HeaderXCustomAuthHeader))
	})

	t.Run("policy denial carries the evaluator reason", func(t *testing.T) {
		revocationChecker := new(MockRevocationChecker)
		revocationChecker.On("Check", mock.Anything, mock.Anything).Return(contracts.TokenValid, nil)

		policyEvaluator := new(MockPolicyEvaluator)
		policyEvaluator.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
			Return(authz.Decision{Allowed: false, Reason: constvars.ErrClientNotAuthorized})

		middlewareInstance := NewMiddlewares(zap.NewNop(), revocationChecker, policyEvaluator, internalConfig)
		router := newTestRouter(middlewareInstance)

		token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "sub": "o2-id", "role": "Owner"})
		req := httptest.NewRequest("GET", "/owners/o1-id", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constvars.ErrClientNotAuthorized, rec.Body.String())
	})
}

func TestAuthorize_AllowedRequest(t *testing.T) {
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: testSecret}}

	revocationChecker := new(MockRevocationChecker)
	revocationChecker.On("Check", mock.Anything, mock.Anything).Return(contracts.TokenValid, nil)

	policyEvaluator := new(MockPolicyEvaluator)
	policyEvaluator.On("Evaluate", mock.Anything,
		authz.Principal{UserID: "o1-id", Role: authz.RoleOwner},
		authz.ResourceIdentifiers{OwnerID: "o1-id"},
	).Return(authz.Decision{Allowed: true})

	middlewareInstance := NewMiddlewares(zap.NewNop(), revocationChecker, policyEvaluator, internalConfig)
	router := newTestRouter(middlewareInstance)

	token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "sub": "o1-id", "role": "Owner"})
	req := httptest.NewRequest("GET", "/owners/o1-id", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "handler reached", rec.Body.String())
	policyEvaluator.AssertExpectations(t)
}

func TestAuthorize_BypassMode(t *testing.T) {
	internalConfig := &config.InternalConfig{
		JWT:   config.JWT{Secret: testSecret},
		Authz: config.Authz{BypassAuth: true},
	}

	middlewareInstance := NewMiddlewares(zap.NewNop(), new(MockRevocationChecker), new(MockPolicyEvaluator), internalConfig)
	router := newTestRouter(middlewareInstance)

	req := httptest.NewRequest("GET", "/owners/o1-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "handler reached", rec.Body.String())
}

// End to end through the real evaluator: a cross-owner reassignment
// pair denies with the descriptive literal.
func TestAuthorize_CrossOwnerReassignment(t *testing.T) {
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: testSecret}}

	revocationChecker := new(MockRevocationChecker)
	revocationChecker.On("Check", mock.Anything, mock.Anything).Return(contracts.TokenValid, nil)

	resolver := &stubResolver{
		ownedTherapists: map[string]string{"o1t1-id": "o1-id", "o2t1-id": "o2-id"},
		patientEdges:    map[string]string{"p1": "o1t1-id"},
	}
	policyEvaluator := authz.NewPolicyEvaluator(zap.NewNop(), resolver)

	middlewareInstance := NewMiddlewares(zap.NewNop(), revocationChecker, policyEvaluator, internalConfig)
	router := newTestRouter(middlewareInstance)

	token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "sub": "o1-id", "role": "Owner"})
	req := httptest.NewRequest("PUT", "/owners/o1-id/therapists/o1t1-id/o2t1-id/patients/p1", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "o1-id does not have permission to reassign between o1t1-id and o2t1-id", rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(constvars.HeaderXCustomAuthHeader))
}
