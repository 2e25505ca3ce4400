package collection

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/apiconfig"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/domain/checklist"
	"travelplanner/internal/domain/journal"
	"travelplanner/internal/domain/packing"
	"travelplanner/internal/domain/user"
)

type MockService[In, Out any] struct {
	mock.Mock
}

func (m *MockService[In, Out]) Create(ctx context.Context, userID uuid.UUID, in In) (Out, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(Out), args.Error(1)
}

func (m *MockService[In, Out]) List(ctx context.Context, userID uuid.UUID) ([]Out, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]Out)
	return out, args.Error(1)
}

func (m *MockService[In, Out]) Update(ctx context.Context, userID, id uuid.UUID, in In) (Out, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(Out), args.Error(1)
}

func (m *MockService[In, Out]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func asAccount(id uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithAccount(ctx.Context(), user.User{ID: id})))
	}
}

var checklistResource = Resource{Name: "checklist", Tag: "checklist", Path: "/user/checklist", NotFound: checklist.ErrNotFound}

func setupChecklist(t *testing.T) (humatest.TestAPI, *MockService[checklist.Input, checklist.Item], uuid.UUID) {
	t.Helper()

	svc := new(MockService[checklist.Input, checklist.Item])
	userID := uuid.New()

	_, api := humatest.New(t, apiconfig.New())
	NewHandler[checklist.Input, checklist.Item](checklistResource, svc, slog.Default(),
		huma.Middlewares{asAccount(userID)}).SetupRoutes(api)
	return api, svc, userID
}

func TestChecklist_Create(t *testing.T) {
	api, svc, userID := setupChecklist(t)

	in := checklist.Input{Name: "Renew passport", DueDate: "2026-06-30"}
	svc.On("Create", mock.Anything, userID, in).Return(checklist.Item{
		ID: uuid.New(), UserID: userID, Name: "Renew passport", DueDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}, nil)

	resp := api.Post("/user/checklist", map[string]any{"name": "Renew passport", "dueDate": "2026-06-30"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"completed":false`)
}

func TestChecklist_InvalidDueDate(t *testing.T) {
	api, svc, userID := setupChecklist(t)
	svc.On("Create", mock.Anything, userID, mock.Anything).Return(checklist.Item{}, checklist.ErrInvalidDate)

	resp := api.Post("/user/checklist", map[string]any{"name": "Renew passport", "dueDate": "tomorrow"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"message":"Invalid due date format"}`, resp.Body.String())
}

func TestChecklist_ListEmpty(t *testing.T) {
	api, svc, userID := setupChecklist(t)
	svc.On("List", mock.Anything, userID).Return(nil, nil)

	resp := api.Get("/user/checklist")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestChecklist_ForeignItem(t *testing.T) {
	api, svc, userID := setupChecklist(t)
	id := uuid.New()
	svc.On("Update", mock.Anything, userID, id, mock.Anything).Return(checklist.Item{}, checklist.ErrNotFound)
	svc.On("Delete", mock.Anything, userID, id).Return(checklist.ErrNotFound)

	resp := api.Put("/user/checklist/"+id.String(), map[string]any{"name": "x", "dueDate": "2026-06-30"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"message":"Checklist item not found"}`, resp.Body.String())

	resp = api.Delete("/user/checklist/" + id.String())
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Delete("/user/checklist/not-a-uuid")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertNumberOfCalls(t, "Delete", 1)
}

func TestJournal_ImageURLMustBeURI(t *testing.T) {
	svc := new(MockService[journal.Input, journal.Entry])
	userID := uuid.New()
	_, api := humatest.New(t, apiconfig.New())
	NewHandler[journal.Input, journal.Entry](
		Resource{Name: "journal", Tag: "journal", Path: "/user/journal", NotFound: journal.ErrNotFound},
		svc, slog.Default(), huma.Middlewares{asAccount(userID)},
	).SetupRoutes(api)

	resp := api.Post("/user/journal", map[string]any{"title": "Day 1", "imageUrl": "::not a url"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)

	in := journal.Input{Title: "Day 1", Content: "Arrived", ImageURL: "https://img.example.com/1.jpg"}
	svc.On("Create", mock.Anything, userID, in).Return(journal.Entry{ID: uuid.New(), Title: "Day 1"}, nil)

	resp = api.Post("/user/journal", map[string]any{
		"title": "Day 1", "content": "Arrived", "imageUrl": "https://img.example.com/1.jpg",
	})
	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
}

func TestSharedAPI(t *testing.T) {
	userID := uuid.New()
	mws := huma.Middlewares{asAccount(userID)}
	_, api := humatest.New(t, apiconfig.New())

	checklists := new(MockService[checklist.Input, checklist.Item])
	packs := new(MockService[packing.Input, packing.Item])
	NewHandler[checklist.Input, checklist.Item](checklistResource, checklists, slog.Default(), mws).SetupRoutes(api)
	NewHandler[packing.Input, packing.Item](
		Resource{Name: "packing", Tag: "packing", Path: "/user/packing-list", NotFound: packing.ErrNotFound},
		packs, slog.Default(), mws,
	).SetupRoutes(api)

	packs.On("List", mock.Anything, userID).Return([]packing.Item{{ID: uuid.New(), Name: "Sunscreen", Category: "Toiletries"}}, nil)

	resp := api.Get("/user/packing-list")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"name":"Sunscreen"`)

	schemas := api.OpenAPI().Components.Schemas.Map()
	assert.Contains(t, schemas, "ChecklistItem")
	assert.Contains(t, schemas, "PackingItem")
}

func TestUpdate_BindsPathID(t *testing.T) {
	userID := uuid.New()
	mws := huma.Middlewares{asAccount(userID)}

	t.Run("checklist", func(t *testing.T) {
		api, svc, userID := setupChecklist(t)
		id, done := uuid.New(), true
		in := checklist.Input{Name: "Renew passport", Completed: &done, DueDate: "2026-06-30"}
		svc.On("Update", mock.Anything, userID, id, in).
			Return(checklist.Item{ID: id, UserID: userID, Name: "Renew passport", Completed: true}, nil)

		resp := api.Put("/user/checklist/"+id.String(),
			map[string]any{"name": "Renew passport", "completed": true, "dueDate": "2026-06-30"})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		assert.Contains(t, resp.Body.String(), id.String())
		svc.AssertCalled(t, "Update", mock.Anything, userID, id, in)
	})

	t.Run("journal", func(t *testing.T) {
		svc := new(MockService[journal.Input, journal.Entry])
		_, api := humatest.New(t, apiconfig.New())
		NewHandler[journal.Input, journal.Entry](
			Resource{Name: "journal", Tag: "journal", Path: "/user/journal", NotFound: journal.ErrNotFound},
			svc, slog.Default(), mws,
		).SetupRoutes(api)

		id := uuid.New()
		in := journal.Input{Title: "Day 2", Content: "Sintra"}
		svc.On("Update", mock.Anything, userID, id, in).Return(journal.Entry{ID: id, Title: "Day 2", Content: "Sintra"}, nil)

		resp := api.Put("/user/journal/"+id.String(), map[string]any{"title": "Day 2", "content": "Sintra"})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		svc.AssertCalled(t, "Update", mock.Anything, userID, id, in)
	})

	t.Run("packing", func(t *testing.T) {
		svc := new(MockService[packing.Input, packing.Item])
		_, api := humatest.New(t, apiconfig.New())
		NewHandler[packing.Input, packing.Item](
			Resource{Name: "packing", Tag: "packing", Path: "/user/packing-list", NotFound: packing.ErrNotFound},
			svc, slog.Default(), mws,
		).SetupRoutes(api)

		id := uuid.New()
		in := packing.Input{Name: "Sunscreen", Packed: true}
		svc.On("Update", mock.Anything, userID, id, in).Return(packing.Item{ID: id, Name: "Sunscreen", Packed: true}, nil)

		resp := api.Put("/user/packing-list/"+id.String(), map[string]any{"name": "Sunscreen", "packed": true})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		assert.Contains(t, resp.Body.String(), `"packed":true`)
		svc.AssertCalled(t, "Update", mock.Anything, userID, id, in)
	})
}
