package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"travelplanner/internal/domain/travel"
)

const (
	BookingURL       = "https://booking-com15.p.rapidapi.com/api/v1/flights"
	bookingOfferLink = "https://www.booking.com/flights?offerToken="
	defaultUnknown   = "Unknown"
	defaultNA        = "N/A"
	defaultPrice     = "Not Available"
	defaultCurrency  = "USD"
)

// Booking talks to the Booking.com flights API published on RapidAPI.
type Booking struct {
	c       *Client
	baseURL string
	header  http.Header
}

func NewBooking(c *Client, baseURL, key, host string) *Booking {
	if baseURL == "" {
		baseURL = BookingURL
	}
	h := http.Header{}
	h.Set("X-RapidAPI-Key", key)
	h.Set("X-RapidAPI-Host", host)
	return &Booking{c: c, baseURL: strings.TrimRight(baseURL, "/"), header: h}
}

func (b *Booking) SearchDestination(ctx context.Context, query string) (string, error) {
	u := b.baseURL + "/searchDestination?" + url.Values{"query": {query}}.Encode()
	body, err := b.c.get(ctx, "booking", u, b.header)
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(body, "data.0.id").String(), nil
}

func (b *Booking) SearchFlights(ctx context.Context, q travel.FlightQuery) ([]travel.Flight, error) {
	v := url.Values{}
	v.Set("fromId", q.FromID)
	v.Set("toId", q.ToID)
	v.Set("departDate", q.DepartDate)
	if q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}
	v.Set("adults", strconv.Itoa(q.Adults))
	v.Set("cabinClass", q.CabinClass)
	v.Set("currency_code", q.CurrencyCode)

	body, err := b.c.get(ctx, "booking", b.baseURL+"/searchFlights?"+v.Encode(), b.header)
	if err != nil {
		return nil, err
	}

	offers := gjson.GetBytes(body, "data.flightOffers").Array()
	flights := make([]travel.Flight, 0, len(offers))
	for _, offer := range offers {
		flights = append(flights, formatOffer(offer))
	}
	return flights, nil
}

// formatOffer flattens one offer: first segment is the outbound trip,
// the second (if any) is the return, the last one supplies arrival.
func formatOffer(offer gjson.Result) travel.Flight {
	segments := offer.Get("segments").Array()

	var first, last gjson.Result
	if len(segments) > 0 {
		first = segments[0]
		last = segments[len(segments)-1]
	}
	leg := first.Get("legs.0")

	var cabins []string
	for _, s := range segments {
		for _, c := range s.Get("legs.#.cabinClass").Array() {
			cabins = append(cabins, c.String())
		}
	}

	f := travel.Flight{
		Airline:          or(leg.Get("carriersData.0.name").String(), defaultUnknown),
		AirlineLogo:      leg.Get("carriersData.0.logo").String(),
		FlightNumber:     or(leg.Get("flightInfo.flightNumber").String(), defaultNA),
		DepartureAirport: or(first.Get("departureAirport.name").String(), defaultUnknown),
		DepartureCode:    or(first.Get("departureAirport.code").String(), defaultNA),
		ArrivalAirport:   or(last.Get("arrivalAirport.name").String(), defaultUnknown),
		ArrivalCode:      or(last.Get("arrivalAirport.code").String(), defaultNA),
		DepartureTime:    or(first.Get("departureTime").String(), defaultUnknown),
		ArrivalTime:      or(last.Get("arrivalTime").String(), defaultUnknown),
		Price:            defaultPrice,
		Currency:         or(offer.Get("priceBreakdown.total.currencyCode").String(), defaultCurrency),
		CabinClass:       or(strings.Join(cabins, ", "), defaultUnknown),
		BookingLink:      bookingOfferLink + offer.Get("token").String(),
	}

	// zero units means the provider has no price yet
	if units := offer.Get("priceBreakdown.total.units"); units.Exists() && units.Int() != 0 {
		f.Price = units.String()
	}

	if len(segments) > 1 {
		ret := segments[1]
		f.ReturnDepartureTime = optional(ret.Get("departureTime").String())
		f.ReturnArrivalTime = optional(ret.Get("arrivalTime").String())
	}
	return f
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
