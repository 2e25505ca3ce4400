package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *Budget) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = uuid.New()
		for i := range b.Categories {
			b.Categories[i].ID = uuid.New()
			b.Categories[i].BudgetID = b.ID
		}
	}
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Budget), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (Budget, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Budget), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, b *Budget, plan Plan) error {
	args := m.Called(ctx, b, plan)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateCategory(ctx context.Context, c *Category) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRepository) GetCategory(ctx context.Context, id uuid.UUID) (Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Category), args.Error(1)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, c *Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, budgetID, categoryID uuid.UUID) error {
	return m.Called(ctx, budgetID, categoryID).Error(0)
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	owner := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *Budget) bool {
		return b.UserID == owner && len(b.Categories) == 2 && b.Categories[0].ID == uuid.Nil
	})).Return(nil)

	b, err := svc.Create(context.Background(), owner, Input{
		Name: "Japan",
		Date: "2026-07-14",
		Categories: []CategoryInput{
			{Name: "Food", Budgeted: 500, Actual: 120},
			// client-supplied id on create is ignored
			{ID: uuid.NewString(), Name: "Hotels", Budgeted: 900},
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), b.Date)
	assert.Equal(t, 380.0, b.Categories[0].Difference)
	assert.Equal(t, 900.0, b.Categories[1].Difference)
	repo.AssertExpectations(t)
}

func TestService_Create_InvalidDate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	_, err := svc.Create(context.Background(), uuid.New(), Input{Name: "x", Date: "someday"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get_Ownership(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	id := uuid.New()

	tests := []struct {
		name    string
		userID  uuid.UUID
		stored  Budget
		repoErr error
		wantErr error
	}{
		{name: "owner", userID: owner, stored: Budget{ID: id, UserID: owner}},
		{name: "other user", userID: stranger, stored: Budget{ID: id, UserID: owner}, wantErr: ErrForbidden},
		{name: "missing", userID: owner, repoErr: ErrNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, slog.Default())
			repo.On("Get", mock.Anything, id).Return(tt.stored, tt.repoErr)

			b, err := svc.Get(context.Background(), tt.userID, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, b.ID)
		})
	}
}

func TestService_Update_ReconcilesCategories(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	owner, id := uuid.New(), uuid.New()
	keep, drop, foreign := uuid.New(), uuid.New(), uuid.New()

	repo.On("Get", mock.Anything, id).Return(Budget{
		ID:     id,
		UserID: owner,
		Categories: []Category{
			{ID: keep, BudgetID: id, Name: "Food"},
			{ID: drop, BudgetID: id, Name: "Fun"},
		},
	}, nil)

	var got Plan
	repo.On("Update", mock.Anything, mock.AnythingOfType("*budget.Budget"), mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(2).(Plan) }).
		Return(nil)

	_, err := svc.Update(context.Background(), owner, id, Input{
		Name: "Japan",
		Date: "2026-07-14",
		Categories: []CategoryInput{
			{ID: keep.String(), Name: "Food & drinks", Budgeted: 10, Actual: 4},
			{Name: "Trains", Budgeted: 300},
			{ID: foreign.String(), Name: "Stolen"},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Update, 1)
	assert.Equal(t, keep, got.Update[0].ID)
	assert.Equal(t, 6.0, got.Update[0].Difference)

	require.Len(t, got.Create, 2)
	for _, c := range got.Create {
		assert.Equal(t, uuid.Nil, c.ID, "new categories must get store-assigned ids")
	}

	require.Len(t, got.Delete, 1)
	assert.Equal(t, drop, got.Delete[0].ID)
	assert.Equal(t, []uuid.UUID{foreign}, got.Unknown)
}

func TestService_Update_Forbidden(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	id := uuid.New()

	repo.On("Get", mock.Anything, id).Return(Budget{ID: id, UserID: uuid.New()}, nil)

	_, err := svc.Update(context.Background(), uuid.New(), id, Input{Name: "x", Date: "2026-01-01"})
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	owner, id := uuid.New(), uuid.New()

	repo.On("Get", mock.Anything, id).Return(Budget{ID: id, UserID: owner}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), owner, id))
	repo.AssertExpectations(t)
}

func TestService_UpdateCategory_WrongBudget(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	owner, budgetID, categoryID := uuid.New(), uuid.New(), uuid.New()

	repo.On("Get", mock.Anything, budgetID).Return(Budget{ID: budgetID, UserID: owner}, nil)
	repo.On("GetCategory", mock.Anything, categoryID).Return(Category{ID: categoryID, BudgetID: uuid.New()}, nil)

	_, err := svc.UpdateCategory(context.Background(), owner, budgetID, categoryID, CategoryInput{Name: "x"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	repo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestService_AddCategory(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	owner, budgetID := uuid.New(), uuid.New()

	repo.On("Get", mock.Anything, budgetID).Return(Budget{ID: budgetID, UserID: owner}, nil)
	repo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *Category) bool {
		return c.BudgetID == budgetID && c.Difference == 50
	})).Return(nil)

	c, err := svc.AddCategory(context.Background(), owner, budgetID, CategoryInput{Name: "Food", Budgeted: 100, Actual: 50})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCategoryInput_InvalidID(t *testing.T) {
	_, err := CategoryInput{ID: "nope", Name: "x"}.toCategory(uuid.New())
	assert.ErrorIs(t, err, ErrInvalidCategoryID)
}
