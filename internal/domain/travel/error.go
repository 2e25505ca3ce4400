package travel

import "travelplanner/internal/domain/apperr"

var (
	ErrLocationRequired = apperr.Validation("Location is required")
	ErrMissingParams    = apperr.Validation("Missing required query parameters")
	ErrInvalidLocations = apperr.Validation("Invalid location queries")

	ErrWeather     = apperr.New(apperr.KindUpstream, "Error fetching weather data")
	ErrFlights     = apperr.New(apperr.KindUpstream, "Failed to fetch flights")
	ErrDestination = apperr.New(apperr.KindUpstream, "Something went wrong!")
)
