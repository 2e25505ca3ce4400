// Маршруты сервера:
//
//	POST   /register, /login                       публичные
//	GET    /aboutMe, PUT /user/update, DELETE /user  auth
//	*      /user/budget[/{id}[/category[/{id}]]]     auth
//	*      /user/itinerary[/{id}]                    auth
//	*      /user/checklist|journal|packing-list      auth
//	GET    /weather, /flights/search, /destination/generate
//	GET    /api/v1/health, /metrics, /openapi.json

package api

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/apiconfig"
	budgetAPI "travelplanner/internal/app/server/api/http/budget"
	"travelplanner/internal/app/server/api/http/collection"
	healthAPI "travelplanner/internal/app/server/api/http/health"
	"travelplanner/internal/app/server/api/http/httperr"
	itineraryAPI "travelplanner/internal/app/server/api/http/itinerary"
	"travelplanner/internal/app/server/api/http/middleware"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/app/server/api/http/middleware/logger"
	"travelplanner/internal/app/server/api/http/middleware/metrics"
	travelAPI "travelplanner/internal/app/server/api/http/travel"
	userAPI "travelplanner/internal/app/server/api/http/user"
	"travelplanner/internal/app/server/config"
	"travelplanner/internal/domain/budget"
	"travelplanner/internal/domain/checklist"
	"travelplanner/internal/domain/itinerary"
	"travelplanner/internal/domain/journal"
	"travelplanner/internal/domain/packing"
	"travelplanner/internal/domain/session"
	"travelplanner/internal/domain/travel"
	"travelplanner/internal/domain/user"
	"travelplanner/internal/infrastructure/storage/postgres"
	"travelplanner/internal/infrastructure/upstream"
)

// Router is anything that registers its operations on the API.
type Router interface {
	SetupRoutes(api huma.API)
}

// New создает *chi.Mux со всеми операциями, зарегистрированными через huma.
func New(storage *postgres.Storage, conf *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(recoverer(log))
	mux.Handle("/metrics", promhttp.Handler())

	API := humachi.New(mux, apiconfig.New())
	for _, r := range handlers(storage, conf, log) {
		r.SetupRoutes(API)
	}

	return mux
}

func handlers(storage *postgres.Storage, conf *config.Config, log *slog.Logger) []Router {
	pool := storage.Pool()

	userService := user.NewService(postgres.NewUserRepository(pool, log), user.NewPasswordValidator(), log)
	sessionService := newSessions(conf.Auth, clockwork.NewRealClock(), log)

	authMW := auth.New(sessionService, userService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	// logger и metrics первыми: отказы auth тоже попадают в лог и счетчики
	public := func() huma.Middlewares {
		return middlewares.Add(loggerMW.Middleware(), metrics.Middleware(), authMW.Middleware()).GetAllAndClear()
	}
	protected := func() huma.Middlewares {
		return middlewares.Add(loggerMW.Middleware(), metrics.Middleware(), authMW.Middleware(), authMW.RequireAccount()).
			GetAllAndClear()
	}

	budgetService := budget.NewService(postgres.NewBudgetRepository(pool, log), log)
	itineraryService := itinerary.NewService(postgres.NewItineraryRepository(pool, log), log)
	checklistService := checklist.NewService(postgres.NewChecklistRepository(pool, log), log)
	journalService := journal.NewService(postgres.NewJournalRepository(pool, log), log)
	packingService := packing.NewService(postgres.NewPackingRepository(pool, log), log)
	travelService := travel.NewService(providers(conf.Upstream, log), travel.RandomPicker(), log)

	return []Router{
		healthAPI.NewHandler(storage, log, middlewares.Add(loggerMW.Middleware(), metrics.Middleware()).GetAllAndClear()),
		userAPI.NewHandler(userService, sessionService, log, public(), protected()),
		budgetAPI.NewHandler(budgetService, log, protected()),
		itineraryAPI.NewHandler(itineraryService, log, protected()),
		collection.NewHandler[checklist.Input, checklist.Item](collection.Resource{
			Name:     "checklist",
			Tag:      "checklist",
			Path:     "/user/checklist",
			NotFound: checklist.ErrNotFound,
		}, checklistService, log, protected()),
		collection.NewHandler[journal.Input, journal.Entry](collection.Resource{
			Name:     "journal",
			Tag:      "journal",
			Path:     "/user/journal",
			NotFound: journal.ErrNotFound,
		}, journalService, log, protected()),
		collection.NewHandler[packing.Input, packing.Item](collection.Resource{
			Name:     "packing",
			Tag:      "packing",
			Path:     "/user/packing-list",
			NotFound: packing.ErrNotFound,
		}, packingService, log, protected()),
		travelAPI.NewHandler(travelService, log, public()),
	}
}

// newSessions issues claims that always live session.DefaultTTL.
func newSessions(conf config.Auth, clock clockwork.Clock, log *slog.Logger) *session.Service {
	return session.NewService([]byte(conf.Secret), session.DefaultTTL, clock, log)
}

func providers(conf config.Upstream, log *slog.Logger) travel.Providers {
	client := upstream.NewClient(upstream.Config{Timeout: conf.Timeout, RPS: conf.RPS}, log)
	return travel.Providers{
		Weather:   upstream.NewVisualCrossing(client, upstream.VisualCrossingURL, conf.VisualCrossingKey),
		Flights:   upstream.NewBooking(client, upstream.BookingURL, conf.RapidAPIKey, conf.RapidAPIHost),
		Countries: upstream.NewRestCountries(client, upstream.RestCountriesURL),
		Summaries: upstream.NewWikipedia(client, upstream.WikipediaURL),
		Images:    upstream.NewUnsplash(client, upstream.UnsplashURL, conf.UnsplashKey),
	}
}

// recoverer is chi's Recoverer that answers in the API's error shape.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					"path", r.URL.Path,
					"request_id", chimiddleware.GetReqID(r.Context()),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(httperr.StatusError{Message: httperr.InternalMessage})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
