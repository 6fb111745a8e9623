package http

import (
	"net/http"

	"github.com/dianotes-api/internal/application/auth"
	"github.com/dianotes-api/internal/application/note"
	"github.com/dianotes-api/internal/config"
	"github.com/dianotes-api/internal/transport/http/handler"
	appmiddleware "github.com/dianotes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 100 requests/minute per IP across the whole surface.
	globalRL := appmiddleware.NewRateLimiter(rate.Limit(100.0/60.0), 100,
		"Too many requests, please try again after 1 minute.")
	r.Use(globalRL.Limit)

	// Tighter limit on the credential endpoints: 5 requests/second, burst of 10.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10,
		"Too many requests, please try again later.")

	authSvc := auth.NewService(auth.ServiceDeps{
		Users:       deps.UserRepo,
		Mailer:      deps.Mailer,
		Tokens:      deps.JWTProvider,
		FrontendURL: cfg.FrontendURL,
	})
	noteSvc := note.NewService(deps.NoteRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, cfg.IsProduction(),
		deps.JWTProvider.SessionTTL(), deps.JWTProvider.OTPTTL())
	noteH := handler.NewNoteHandler(noteSvc)

	// ── Public routes (no session) ───────────────────────────────────────
	r.Get("/", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/create-account", authH.Register)
	r.Get("/verify-email", authH.VerifyEmail)
	r.Post("/send-verification-email", authH.ResendVerification)
	r.With(sensitiveRL.Limit).Post("/login", authH.Login)
	r.With(sensitiveRL.Limit).Post("/send-otp", authH.SendOTP)
	r.Post("/validate-otp", authH.ValidateOTP)
	r.Put("/reset-password", authH.ResetPassword)

	// Logout only clears a cookie; it never validates one.
	r.Post("/logout", authH.Logout)

	// ── Session-gated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))

		r.Get("/auth-status", authH.AuthStatus)
		r.Get("/get-user", authH.GetUser)
		r.Put("/change-password", authH.ChangePassword)

		r.Post("/add-note", noteH.Add)
		r.Put("/edit-note/{noteId}", noteH.Edit)
		r.Get("/get-all-notes", noteH.GetAll)
		r.Delete("/delete-note/{noteId}", noteH.Delete)
		r.Put("/update-note-pinned/{noteId}", noteH.UpdatePinned)
		r.Get("/search-notes", noteH.Search)
	})

	return r
}
