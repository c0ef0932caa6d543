package handler

import (
	"net/http"

	"github.com/dangerclosesec/scholar/internal/auth"
	"github.com/dangerclosesec/scholar/internal/middleware"
	"github.com/dangerclosesec/scholar/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// routeSet is the part of ResourceHandler the router needs.
type routeSet interface {
	Name() string
	Routes(r chi.Router)
	ReviewRoutes(r chi.Router)
}

// API holds every handler mounted under /api/v1.
type API struct {
	tokens    *auth.TokenManager
	resources []routeSet
	reviewed  []routeSet
	users     *UserHandler
	stats     *StatsHandler
	audit     *AuditLogHandler
}

func NewAPI(
	tokens *auth.TokenManager,
	catalog *service.Catalog,
	users *service.UserService,
	stats *service.StatsService,
	auditLogs *service.AuditLogService,
) *API {
	v := validator.New()

	journals := NewResourceHandler(catalog.Journals, v)
	conferences := NewResourceHandler(catalog.Conferences, v)
	patents := NewResourceHandler(catalog.Patents, v)

	return &API{
		tokens: tokens,
		resources: []routeSet{
			journals,
			conferences,
			patents,
			NewResourceHandler(catalog.Awards, v),
			NewResourceHandler(catalog.Grants, v),
			NewResourceHandler(catalog.Mous, v),
			NewResourceHandler(catalog.Collaborations, v),
			NewResourceHandler(catalog.DeptConducted, v),
			NewResourceHandler(catalog.DeptAttended, v),
			NewResourceHandler(catalog.HigherStudies, v),
			NewResourceHandler(catalog.EntranceExams, v),
			NewResourceHandler(catalog.CareerCounselling, v),
			NewResourceHandler(catalog.SportsCultural, v),
			NewResourceHandler(catalog.IntraSports, v),
			NewResourceHandler(catalog.InterSports, v),
		},
		reviewed: []routeSet{journals, conferences, patents},
		users:    NewUserHandler(users),
		stats:    NewStatsHandler(stats),
		audit:    NewAuditLogHandler(auditLogs),
	}
}

// Register mounts the API on r under /api/v1.
func (a *API) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuditContext)

		r.Get("/home", a.stats.Home)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(a.tokens))

			r.Get("/home/stats", a.stats.Mine)
			r.Get("/users/profile", a.users.Profile)

			r.Route("/chair", func(r chi.Router) {
				r.Use(middleware.RequireReviewer)
				r.Get("/teachers", a.users.ListTeachers)
				r.Route("/teachers/{teacherID}", func(r chi.Router) {
					r.Get("/", a.users.GetTeacher)
					for _, h := range a.reviewed {
						r.Route("/"+h.Name(), h.ReviewRoutes)
					}
				})
			})

			r.Get("/audit", a.audit.GetAuditLogs)
			r.Get("/audit/{id}", a.audit.GetAuditLogByID)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				for _, h := range a.resources {
					r.Route("/"+h.Name(), h.Routes)
				}
			})
		})
	})
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
