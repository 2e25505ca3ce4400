package itinerary

import "travelplanner/internal/domain/itinerary"

type idPath struct {
	ID string `path:"id" doc:"ID маршрута"`
}

type createInput struct {
	Body itinerary.Input
}

type updateInput struct {
	ID   string `path:"id" doc:"ID маршрута"`
	Body itinerary.Input
}

type itineraryOutput struct {
	Body itinerary.Itinerary
}

type listOutput struct {
	Body []itinerary.Itinerary
}
