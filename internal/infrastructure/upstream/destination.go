package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

const (
	RestCountriesURL = "https://restcountries.com/v3.1/all"
	WikipediaURL     = "https://en.wikipedia.org/w/api.php"
	UnsplashURL      = "https://api.unsplash.com/photos/random"
)

var ErrEmptyResponse = errors.New("upstream returned no usable data")

type RestCountries struct {
	c   *Client
	url string
}

func NewRestCountries(c *Client, u string) *RestCountries {
	if u == "" {
		u = RestCountriesURL
	}
	return &RestCountries{c: c, url: u}
}

// Countries returns common country names in provider order.
func (r *RestCountries) Countries(ctx context.Context) ([]string, error) {
	body, err := r.c.get(ctx, "restcountries", r.url+"?fields=name", nil)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, n := range gjson.GetBytes(body, "#.name.common").Array() {
		if s := n.String(); s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return nil, ErrEmptyResponse
	}
	return names, nil
}

type Wikipedia struct {
	c   *Client
	url string
}

func NewWikipedia(c *Client, u string) *Wikipedia {
	if u == "" {
		u = WikipediaURL
	}
	return &Wikipedia{c: c, url: u}
}

// Summary returns the intro extract (first 500 chars, HTML) of the article.
func (w *Wikipedia) Summary(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("prop", "extracts")
	q.Set("exintro", "true")
	q.Set("exchars", "500")
	q.Set("titles", title)

	body, err := w.c.get(ctx, "wikipedia", w.url+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	// pages is keyed by page id; only one title is requested
	var extract string
	gjson.GetBytes(body, "query.pages").ForEach(func(_, page gjson.Result) bool {
		extract = page.Get("extract").String()
		return false
	})
	return extract, nil
}

type Unsplash struct {
	c   *Client
	url string
	key string
}

func NewUnsplash(c *Client, u, key string) *Unsplash {
	if u == "" {
		u = UnsplashURL
	}
	return &Unsplash{c: c, url: u, key: key}
}

func (u *Unsplash) RandomImage(ctx context.Context, query string) (string, error) {
	q := url.Values{"query": {query}, "count": {"1"}}
	h := http.Header{}
	h.Set("Authorization", "Client-ID "+u.key)

	body, err := u.c.get(ctx, "unsplash", u.url+"?"+q.Encode(), h)
	if err != nil {
		return "", err
	}

	img := gjson.GetBytes(body, "0.urls.regular").String()
	if img == "" {
		return "", ErrEmptyResponse
	}
	return img, nil
}
