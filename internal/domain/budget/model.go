package budget

import (
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Name       string     `json:"name"`
	TripType   string     `json:"tripType"`
	Currency   string     `json:"currency"`
	Date       time.Time  `json:"date"`
	Amount     float64    `json:"amount"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Category is a spending line of a budget. Difference is always
// Budgeted - Actual and is computed here, never taken from the client.
type Category struct {
	ID         uuid.UUID `json:"id"`
	BudgetID   uuid.UUID `json:"budgetId"`
	Name       string    `json:"name"`
	Budgeted   float64   `json:"budgeted"`
	Actual     float64   `json:"actual"`
	Difference float64   `json:"difference"`
}

func categoryID(c Category) uuid.UUID { return c.ID }

type Input struct {
	Name       string          `json:"name" minLength:"1" maxLength:"200" doc:"Название бюджета"`
	TripType   string          `json:"tripType,omitempty" doc:"Тип поездки"`
	Currency   string          `json:"currency,omitempty" example:"USD"`
	Date       string          `json:"date" doc:"Дата, RFC 3339 или YYYY-MM-DD" example:"2026-07-14"`
	Amount     float64         `json:"amount,omitempty"`
	Categories []CategoryInput `json:"categories,omitempty" doc:"Полный список категорий; отсутствующие в списке будут удалены"`
}

type CategoryInput struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	ID       string   `json:"id,omitempty" doc:"ID существующей категории; пусто для новой"`
	Name     string   `json:"name" minLength:"1" maxLength:"200"`
	Budgeted float64  `json:"budgeted,omitempty"`
	Actual   float64  `json:"actual,omitempty"`
}

func (in CategoryInput) toCategory(budgetID uuid.UUID) (Category, error) {
	c := Category{
		BudgetID:   budgetID,
		Name:       in.Name,
		Budgeted:   in.Budgeted,
		Actual:     in.Actual,
		Difference: in.Budgeted - in.Actual,
	}
	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return Category{}, ErrInvalidCategoryID
		}
		c.ID = id
	}
	return c, nil
}
