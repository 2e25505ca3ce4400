package itinerary

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	TripName    string     `json:"tripName"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Time        string     `json:"time"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID           uuid.UUID `json:"id"`
	ItineraryID  uuid.UUID `json:"itineraryId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ActivityTime string    `json:"activityTime"`
	Location     string    `json:"location"`
}

func activityID(a Activity) uuid.UUID { return a.ID }

type Input struct {
	TripName    string          `json:"tripName" minLength:"1" maxLength:"200"`
	StartDate   string          `json:"startDate" example:"2026-07-14"`
	EndDate     string          `json:"endDate" example:"2026-07-28"`
	Type        string          `json:"type,omitempty"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date" doc:"День программы"`
	Time        string          `json:"time,omitempty" example:"09:30"`
	Activities  []ActivityInput `json:"activities,omitempty" doc:"Полный список активностей; отсутствующие будут удалены"`
}

type ActivityInput struct {
	_            struct{} `json:"-" additionalProperties:"true"`
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name" minLength:"1" maxLength:"200"`
	Description  string   `json:"description,omitempty"`
	ActivityTime string   `json:"activityTime,omitempty"`
	Location     string   `json:"location,omitempty"`
}

func (in ActivityInput) toActivity(itineraryID uuid.UUID) (Activity, error) {
	a := Activity{
		ItineraryID:  itineraryID,
		Name:         in.Name,
		Description:  in.Description,
		ActivityTime: in.ActivityTime,
		Location:     in.Location,
	}
	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return Activity{}, ErrInvalidActivityID
		}
		a.ID = id
	}
	return a, nil
}
