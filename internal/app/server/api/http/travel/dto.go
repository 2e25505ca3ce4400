package travel

import "travelplanner/internal/domain/travel"

type weatherInput struct {
	Location string `query:"location" doc:"Город или адрес" example:"Lisbon"`
}

// weatherOutput передает документ провайдера как есть.
type weatherOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type flightsInput struct {
	FromQuery    string `query:"fromQuery" example:"Berlin"`
	ToQuery      string `query:"toQuery" example:"Lisbon"`
	DepartDate   string `query:"departDate" example:"2026-07-14"`
	ReturnDate   string `query:"returnDate"`
	Adults       int    `query:"adults" minimum:"0"`
	CabinClass   string `query:"cabinClass" doc:"ECONOMY по умолчанию" example:"BUSINESS"`
	CurrencyCode string `query:"currency_code" example:"EUR"`
}

func (in flightsInput) search() travel.FlightSearch {
	return travel.FlightSearch{
		FromQuery:    in.FromQuery,
		ToQuery:      in.ToQuery,
		DepartDate:   in.DepartDate,
		ReturnDate:   in.ReturnDate,
		Adults:       in.Adults,
		CabinClass:   in.CabinClass,
		CurrencyCode: in.CurrencyCode,
	}
}

type flightsOutput struct {
	Body FlightsResponse
}

type FlightsResponse struct {
	Flights []travel.Flight `json:"flights"`
}

type destinationOutput struct {
	Body travel.Destination
}
