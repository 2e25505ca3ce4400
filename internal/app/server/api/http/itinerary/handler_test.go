package itinerary

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/apiconfig"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/domain/itinerary"
	"travelplanner/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID uuid.UUID, in itinerary.Input) (itinerary.Itinerary, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(itinerary.Itinerary), args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID uuid.UUID) ([]itinerary.Itinerary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]itinerary.Itinerary), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID, id uuid.UUID) (itinerary.Itinerary, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(itinerary.Itinerary), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID, id uuid.UUID, in itinerary.Input) (itinerary.Itinerary, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(itinerary.Itinerary), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func setup(t *testing.T) (humatest.TestAPI, *MockService, uuid.UUID) {
	t.Helper()

	svc := new(MockService)
	userID := uuid.New()
	asAccount := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithAccount(ctx.Context(), user.User{ID: userID})))
	}

	_, api := humatest.New(t, apiconfig.New())
	NewHandler(svc, slog.Default(), huma.Middlewares{asAccount}).SetupRoutes(api)
	return api, svc, userID
}

func TestCreate(t *testing.T) {
	api, svc, userID := setup(t)

	in := itinerary.Input{
		TripName: "Japan", StartDate: "2026-04-01", EndDate: "2026-04-14", Date: "2026-04-02",
		Activities: []itinerary.ActivityInput{{Name: "Fushimi Inari", Location: "Kyoto"}},
	}
	id := uuid.New()
	svc.On("Create", mock.Anything, userID, in).Return(itinerary.Itinerary{
		ID: id, UserID: userID, TripName: "Japan",
		Activities: []itinerary.Activity{{ID: uuid.New(), ItineraryID: id, Name: "Fushimi Inari", Location: "Kyoto"}},
	}, nil)

	resp := api.Post("/user/itinerary", map[string]any{
		"tripName": "Japan", "startDate": "2026-04-01", "endDate": "2026-04-14", "date": "2026-04-02",
		"activities": []map[string]any{{"name": "Fushimi Inari", "location": "Kyoto"}},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"location":"Kyoto"`)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"date range", itinerary.ErrDateRange, http.StatusBadRequest, "End date must not be before start date"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc, _ := setup(t)
			svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(itinerary.Itinerary{}, tt.err)

			resp := api.Post("/user/itinerary", map[string]any{
				"tripName": "Japan", "startDate": "2026-04-14", "endDate": "2026-04-01", "date": "2026-04-02",
			})
			assert.Equal(t, tt.status, resp.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, resp.Body.String())
		})
	}
}

func TestCreate_MissingTripName(t *testing.T) {
	api, svc, _ := setup(t)

	resp := api.Post("/user/itinerary", map[string]any{"startDate": "2026-04-01", "endDate": "2026-04-14", "date": "2026-04-02"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUpdateDelete(t *testing.T) {
	api, svc, userID := setup(t)
	id := uuid.New()

	t.Run("get foreign", func(t *testing.T) {
		svc.On("Get", mock.Anything, userID, id).Return(itinerary.Itinerary{}, itinerary.ErrForbidden).Once()

		resp := api.Get("/user/itinerary/" + id.String())
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("update", func(t *testing.T) {
		svc.On("Update", mock.Anything, userID, id, mock.Anything).
			Return(itinerary.Itinerary{ID: id, TripName: "Japan", Activities: []itinerary.Activity{}}, nil).Once()

		resp := api.Put("/user/itinerary/"+id.String(), map[string]any{
			"tripName": "Japan", "startDate": "2026-04-01", "endDate": "2026-04-14", "date": "2026-04-02",
			"activities": []map[string]any{},
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		assert.Contains(t, resp.Body.String(), `"activities":[]`)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc.On("Delete", mock.Anything, userID, id).Return(itinerary.ErrNotFound).Once()

		resp := api.Delete("/user/itinerary/" + id.String())
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.JSONEq(t, `{"message":"Itinerary not found"}`, resp.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := api.Delete("/user/itinerary/xyz")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
