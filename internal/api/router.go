package api

import (
	"net/http"
	"time"

	"woofer/internal/api/handler"
	"woofer/internal/app/service"
	"woofer/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	userService *service.UserService,
	woofService *service.WoofService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{
			Message: "Welcome to Woofer. Woof woof!",
		})
	})

	userHandler := handler.NewUserHandler(userService)
	r.Route("/users", userHandler.RegisterRoutes)

	woofHandler := handler.NewWoofHandler(woofService)
	r.Route("/woofs", woofHandler.RegisterRoutes)

	return r
}
