// Package travel combines third-party lookups: weather, flights and random destinations.
package travel

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

type WeatherProvider interface {
	Forecast(ctx context.Context, location string) (Forecast, error)
}

type FlightProvider interface {
	// SearchDestination returns the provider id of the best match, "" when nothing matches.
	SearchDestination(ctx context.Context, query string) (string, error)
	SearchFlights(ctx context.Context, q FlightQuery) ([]Flight, error)
}

type CountryProvider interface {
	Countries(ctx context.Context) ([]string, error)
}

type SummaryProvider interface {
	Summary(ctx context.Context, title string) (string, error)
}

type ImageProvider interface {
	RandomImage(ctx context.Context, query string) (string, error)
}

type Providers struct {
	Weather   WeatherProvider
	Flights   FlightProvider
	Countries CountryProvider
	Summaries SummaryProvider
	Images    ImageProvider
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// RandomPicker is safe for concurrent use.
func RandomPicker() Picker {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return r.Intn(n)
	}
}

type Servicer interface {
	Weather(ctx context.Context, location string) (Forecast, error)
	SearchFlights(ctx context.Context, s FlightSearch) ([]Flight, error)
	GenerateDestination(ctx context.Context) (Destination, error)
}

type Service struct {
	p    Providers
	pick Picker
	log  *slog.Logger
}

func NewService(p Providers, pick Picker, log *slog.Logger) *Service {
	if pick == nil {
		pick = RandomPicker()
	}
	return &Service{p: p, pick: pick, log: log.With("component", "travel_service")}
}

func (s *Service) Weather(ctx context.Context, location string) (Forecast, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrLocationRequired
	}

	f, err := s.p.Weather.Forecast(ctx, location)
	if err != nil {
		s.log.Error("weather lookup failed", "location", location, "error", err)
		return nil, ErrWeather
	}
	return f, nil
}

// SearchFlights resolves both locations to provider ids and searches offers.
// Failing to resolve either one is a client error; the search itself failing is not.
func (s *Service) SearchFlights(ctx context.Context, q FlightSearch) ([]Flight, error) {
	if q.FromQuery == "" || q.ToQuery == "" || q.DepartDate == "" || q.Adults <= 0 || q.CurrencyCode == "" {
		return nil, ErrMissingParams
	}

	fromID := s.resolve(ctx, q.FromQuery)
	toID := s.resolve(ctx, q.ToQuery)
	if fromID == "" || toID == "" {
		return nil, ErrInvalidLocations
	}

	cabin := q.CabinClass
	if cabin == "" {
		cabin = "ECONOMY"
	}

	flights, err := s.p.Flights.SearchFlights(ctx, FlightQuery{
		FromID:       fromID,
		ToID:         toID,
		DepartDate:   q.DepartDate,
		ReturnDate:   q.ReturnDate,
		Adults:       q.Adults,
		CabinClass:   cabin,
		CurrencyCode: q.CurrencyCode,
	})
	if err != nil {
		s.log.Error("flight search failed", "from", fromID, "to", toID, "error", err)
		return nil, ErrFlights
	}
	if len(flights) == 0 {
		s.log.Warn("no flights found", "from", fromID, "to", toID, "depart", q.DepartDate)
	}
	return flights, nil
}

func (s *Service) resolve(ctx context.Context, query string) string {
	id, err := s.p.Flights.SearchDestination(ctx, query)
	if err != nil {
		s.log.Warn("destination lookup failed", "query", query, "error", err)
		return ""
	}
	return id
}

func (s *Service) GenerateDestination(ctx context.Context) (Destination, error) {
	d, err := s.generate(ctx)
	if err != nil {
		s.log.Error("destination generation failed", "error", err)
		return Destination{}, ErrDestination
	}
	return d, nil
}

func (s *Service) generate(ctx context.Context) (Destination, error) {
	countries, err := s.p.Countries.Countries(ctx)
	if err != nil {
		return Destination{}, err
	}
	if len(countries) == 0 {
		return Destination{}, errors.New("country list is empty")
	}
	name := countries[s.pick(len(countries))]

	summary, err := s.p.Summaries.Summary(ctx, name)
	if err != nil {
		return Destination{}, err
	}

	image, err := s.p.Images.RandomImage(ctx, name)
	if err != nil {
		return Destination{}, err
	}

	return Destination{Destination: name, ReasonsToVisit: summary, ImageURL: image}, nil
}
