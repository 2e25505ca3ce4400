package travel

import "encoding/json"

// Forecast is the weather provider's document, passed through as is.
type Forecast = json.RawMessage

type FlightQuery struct {
	FromID       string
	ToID         string
	DepartDate   string
	ReturnDate   string
	Adults       int
	CabinClass   string
	CurrencyCode string
}

type Flight struct {
	Airline             string  `json:"airline"`
	AirlineLogo         string  `json:"airlineLogo"`
	FlightNumber        string  `json:"flightNumber"`
	DepartureAirport    string  `json:"departureAirport"`
	DepartureCode       string  `json:"departureCode"`
	ArrivalAirport      string  `json:"arrivalAirport"`
	ArrivalCode         string  `json:"arrivalCode"`
	DepartureTime       string  `json:"departureTime"`
	ArrivalTime         string  `json:"arrivalTime"`
	ReturnDepartureTime *string `json:"returnDepartureTime"`
	ReturnArrivalTime   *string `json:"returnArrivalTime"`
	Price               string  `json:"price"`
	Currency            string  `json:"currency"`
	CabinClass          string  `json:"cabinClass"`
	BookingLink         string  `json:"bookingLink"`
}

type Destination struct {
	Destination    string `json:"destination"`
	ReasonsToVisit string `json:"reasonsToVisit"`
	ImageURL       string `json:"imageUrl"`
}

// FlightSearch is what the caller asks for, before locations are resolved.
type FlightSearch struct {
	FromQuery    string
	ToQuery      string
	DepartDate   string
	ReturnDate   string
	Adults       int
	CabinClass   string
	CurrencyCode string
}
