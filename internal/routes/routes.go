package routes

import (
	"net/http"

	"github.com/rubytogether/time-card/internal/app"
	"github.com/rubytogether/time-card/internal/handler"
	"github.com/rubytogether/time-card/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	entry := handler.NewEntryHandler(app.EntryService)
	worker := handler.NewWorkerHandler(app.WorkerService)
	report := handler.NewReportHandler(app.ReportService)

	// Mutating verbs require admin credentials and pass the rate limiter;
	// read routes are open.
	admin := middleware.RequireAdmin(app.Cfg.AdminUser, app.Cfg.AdminPasswordHash)
	rateLimiter := middleware.RateLimitMutations()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", entry.List)
	mux.HandleFunc("GET /healthz", handler.Health)

	// Reports
	mux.HandleFunc("GET /report/monthly/{period}", report.Monthly)
	mux.HandleFunc("GET /report/biweekly/{period}", report.Biweekly)

	// Entries
	mux.HandleFunc("POST /entries", rateLimiter(admin(entry.Create)))
	mux.HandleFunc("GET /entries/{id}", entry.Show)
	mux.HandleFunc("PUT /entries/{id}", rateLimiter(admin(entry.Update)))
	mux.HandleFunc("DELETE /entries/{id}", rateLimiter(admin(entry.Delete)))

	// Workers
	mux.HandleFunc("GET /workers", worker.List)
	mux.HandleFunc("GET /workers/{id}", worker.Show)
	mux.HandleFunc("PUT /workers/{id}", rateLimiter(admin(worker.Update)))

	return middleware.Chain(mux,
		middleware.RequestLogging,
	)
}
