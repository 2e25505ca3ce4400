package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/travel"
)

func newTestClient() *Client {
	return NewClient(Config{Timeout: 2 * time.Second}, slog.Default())
}

func TestVisualCrossing_Forecast(t *testing.T) {
	var gotPath, gotKey, gotInclude string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotKey = r.URL.Query().Get("key")
		gotInclude = r.URL.Query().Get("include")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resolvedAddress":"New York, NY","currentConditions":{"temp":71.2}}`))
	}))
	defer srv.Close()

	vc := NewVisualCrossing(newTestClient(), srv.URL+"/timeline", "secret")
	doc, err := vc.Forecast(context.Background(), "New York")
	require.NoError(t, err)

	assert.Equal(t, "/timeline/New%20York/today", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "current,days", gotInclude)
	assert.JSONEq(t, `{"resolvedAddress":"New York, NY","currentConditions":{"temp":71.2}}`, string(doc))
}

func TestVisualCrossing_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid location", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewVisualCrossing(newTestClient(), srv.URL, "k").Forecast(context.Background(), "nowhere")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "visualcrossing", se.Service)
}

func TestVisualCrossing_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewVisualCrossing(newTestClient(), addr, "vc-secret-key").Forecast(context.Background(), "Lisbon")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "vc-secret-key")
	assert.NotContains(t, err.Error(), "key=")
	assert.Contains(t, err.Error(), "/Lisbon/today")
}

const flightsFixture = `{
  "status": true,
  "data": {
    "flightOffers": [
      {
        "token": "tok-1",
        "segments": [
          {
            "departureAirport": {"name": "Berlin Brandenburg", "code": "BER"},
            "arrivalAirport": {"name": "Fiumicino", "code": "FCO"},
            "departureTime": "2026-09-01T07:00:00",
            "arrivalTime": "2026-09-01T09:05:00",
            "legs": [
              {"cabinClass": "ECONOMY", "flightInfo": {"flightNumber": 123},
               "carriersData": [{"name": "ITA Airways", "logo": "https://logo/az.png"}]}
            ]
          },
          {
            "departureAirport": {"name": "Fiumicino", "code": "FCO"},
            "arrivalAirport": {"name": "Berlin Brandenburg", "code": "BER"},
            "departureTime": "2026-09-08T18:00:00",
            "arrivalTime": "2026-09-08T20:10:00",
            "legs": [{"cabinClass": "PREMIUM_ECONOMY"}]
          }
        ],
        "priceBreakdown": {"total": {"currencyCode": "EUR", "units": 245}}
      },
      {
        "token": "tok-2",
        "segments": [],
        "priceBreakdown": {"total": {"units": 0}}
      }
    ]
  }
}`

func TestBooking(t *testing.T) {
	var headers http.Header
	var flightQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		switch r.URL.Path {
		case "/searchDestination":
			if r.URL.Query().Get("query") == "Atlantis" {
				_, _ = w.Write([]byte(`{"data":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":[{"id":"BER.AIRPORT"},{"id":"BER.CITY"}]}`))
		case "/searchFlights":
			flightQuery = r.URL.Query()
			_, _ = w.Write([]byte(flightsFixture))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	b := NewBooking(newTestClient(), srv.URL, "rk", "booking-com15.p.rapidapi.com")

	id, err := b.SearchDestination(context.Background(), "Berlin")
	require.NoError(t, err)
	assert.Equal(t, "BER.AIRPORT", id)
	assert.Equal(t, "rk", headers.Get("X-RapidAPI-Key"))
	assert.Equal(t, "booking-com15.p.rapidapi.com", headers.Get("X-RapidAPI-Host"))

	id, err = b.SearchDestination(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, id)

	flights, err := b.SearchFlights(context.Background(), travel.FlightQuery{
		FromID: "BER.AIRPORT", ToID: "FCO.AIRPORT", DepartDate: "2026-09-01",
		Adults: 2, CabinClass: "ECONOMY", CurrencyCode: "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", flightQuery["adults"][0])
	assert.NotContains(t, flightQuery, "returnDate")
	require.Len(t, flights, 2)

	f := flights[0]
	assert.Equal(t, "ITA Airways", f.Airline)
	assert.Equal(t, "https://logo/az.png", f.AirlineLogo)
	assert.Equal(t, "123", f.FlightNumber)
	assert.Equal(t, "BER", f.DepartureCode)
	assert.Equal(t, "Berlin Brandenburg", f.ArrivalAirport)
	assert.Equal(t, "2026-09-08T20:10:00", f.ArrivalTime)
	require.NotNil(t, f.ReturnDepartureTime)
	assert.Equal(t, "2026-09-08T18:00:00", *f.ReturnDepartureTime)
	assert.Equal(t, "245", f.Price)
	assert.Equal(t, "EUR", f.Currency)
	assert.Equal(t, "ECONOMY, PREMIUM_ECONOMY", f.CabinClass)
	assert.Equal(t, "https://www.booking.com/flights?offerToken=tok-1", f.BookingLink)

	empty := flights[1]
	assert.Equal(t, "Unknown", empty.Airline)
	assert.Equal(t, "N/A", empty.FlightNumber)
	assert.Equal(t, "Not Available", empty.Price)
	assert.Equal(t, "USD", empty.Currency)
	assert.Equal(t, "Unknown", empty.CabinClass)
	assert.Nil(t, empty.ReturnArrivalTime)
}

func TestDestinationProviders(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("/countries", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":{"common":"Chile"}},{"name":{"common":"Nepal"}}]`))
	})
	mux.HandleFunc("/wiki", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Nepal", r.URL.Query().Get("titles"))
		_, _ = w.Write([]byte(`{"query":{"pages":{"30611":{"title":"Nepal","extract":"<p>Nepal is a country.</p>"}}}}`))
	})
	mux.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"urls":{"regular":"https://images.unsplash.com/nepal"}}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient()

	names, err := NewRestCountries(c, srv.URL+"/countries").Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Chile", "Nepal"}, names)

	summary, err := NewWikipedia(c, srv.URL+"/wiki").Summary(context.Background(), "Nepal")
	require.NoError(t, err)
	assert.Equal(t, "<p>Nepal is a country.</p>", summary)

	img, err := NewUnsplash(c, srv.URL+"/photos", "uk").RandomImage(context.Background(), "Nepal")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/nepal", img)
	assert.Equal(t, "Client-ID uk", auth)
}

func TestUnsplash_NoImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewUnsplash(newTestClient(), srv.URL, "k").RandomImage(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClient_ContextCanceled(t *testing.T) {
	c := NewClient(Config{RPS: 1}, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.get(ctx, "test", "http://127.0.0.1:1", nil)
	assert.Error(t, err)
}
