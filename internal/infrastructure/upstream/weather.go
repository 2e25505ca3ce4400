package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"travelplanner/internal/domain/travel"
)

const (
	VisualCrossingURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline/"

	weatherElements = "name,temp,feelslike,humidity,precip,precipprob,windspeed,cloudcover,sunrise,sunset,moonphase,conditions"
)

// VisualCrossing fetches today's conditions for a free-form location.
type VisualCrossing struct {
	c       *Client
	baseURL string
	key     string
}

func NewVisualCrossing(c *Client, baseURL, key string) *VisualCrossing {
	if baseURL == "" {
		baseURL = VisualCrossingURL
	}
	return &VisualCrossing{c: c, baseURL: strings.TrimRight(baseURL, "/") + "/", key: key}
}

func (v *VisualCrossing) Forecast(ctx context.Context, location string) (travel.Forecast, error) {
	q := url.Values{}
	q.Set("key", v.key)
	q.Set("unitGroup", "us")
	q.Set("elements", weatherElements)
	q.Set("include", "current,days")
	q.Set("contentType", "json")

	u := v.baseURL + url.PathEscape(location) + "/today?" + q.Encode()
	body, err := v.c.get(ctx, "visualcrossing", u, nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errors.New("visualcrossing: response is not JSON")
	}
	return travel.Forecast(body), nil
}
