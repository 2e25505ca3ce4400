package budget

import "travelplanner/internal/domain/budget"

type idPath struct {
	ID string `path:"id" doc:"ID бюджета"`
}

type categoryPath struct {
	BudgetID   string `path:"budgetId"`
	CategoryID string `path:"categoryId"`
}

type createInput struct {
	Body budget.Input
}

type updateInput struct {
	ID   string `path:"id" doc:"ID бюджета"`
	Body budget.Input
}

type budgetOutput struct {
	Body budget.Budget
}

type listOutput struct {
	Body []budget.Budget
}

type addCategoryInput struct {
	ID   string `path:"id" doc:"ID бюджета"`
	Body budget.CategoryInput
}

type updateCategoryInput struct {
	BudgetID   string `path:"budgetId"`
	CategoryID string `path:"categoryId"`
	Body       budget.CategoryInput
}

type categoryOutput struct {
	Body budget.Category
}
