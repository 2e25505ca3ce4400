package budget

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/domain/budget"
)

type Handler struct {
	service budget.Servicer
	log     *slog.Logger
	mws     huma.Middlewares
}

func NewHandler(service budget.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mws:     mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.addCategoryOp(), h.addCategory)
	huma.Register(api, h.updateCategoryOp(), h.updateCategory)
	huma.Register(api, h.deleteCategoryOp(), h.deleteCategory)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*budgetOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	b, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &budgetOutput{Body: b}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &listOutput{Body: budgets}, nil
}

func (h *Handler) get(ctx context.Context, input *idPath) (*budgetOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, budget.ErrNotFound)
	if err != nil {
		return nil, err
	}

	b, err := h.service.Get(ctx, userID, id)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &budgetOutput{Body: b}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*budgetOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, budget.ErrNotFound)
	if err != nil {
		return nil, err
	}

	b, err := h.service.Update(ctx, userID, id, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &budgetOutput{Body: b}, nil
}

func (h *Handler) delete(ctx context.Context, input *idPath) (*struct{}, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, budget.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, httperr.From(h.log, err)
	}
	return nil, nil
}

func (h *Handler) addCategory(ctx context.Context, input *addCategoryInput) (*categoryOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	budgetID, err := httperr.PathID(input.ID, budget.ErrNotFound)
	if err != nil {
		return nil, err
	}

	c, err := h.service.AddCategory(ctx, userID, budgetID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &categoryOutput{Body: c}, nil
}

func (h *Handler) updateCategory(ctx context.Context, input *updateCategoryInput) (*categoryOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	budgetID, categoryID, err := parseCategoryPath(input.BudgetID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	c, err := h.service.UpdateCategory(ctx, userID, budgetID, categoryID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &categoryOutput{Body: c}, nil
}

func (h *Handler) deleteCategory(ctx context.Context, input *categoryPath) (*struct{}, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	budgetID, categoryID, err := parseCategoryPath(input.BudgetID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteCategory(ctx, userID, budgetID, categoryID); err != nil {
		return nil, httperr.From(h.log, err)
	}
	return nil, nil
}

func parseCategoryPath(rawBudgetID, rawCategoryID string) (budgetID, categoryID uuid.UUID, err error) {
	if budgetID, err = httperr.PathID(rawBudgetID, budget.ErrNotFound); err != nil {
		return
	}
	categoryID, err = httperr.PathID(rawCategoryID, budget.ErrCategoryNotFound)
	return
}
