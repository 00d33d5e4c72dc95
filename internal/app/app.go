package app

import (
	"fmt"
	"net/http"
	"tabnews/internal/app/deps"
	"tabnews/internal/app/services"
	activateuser "tabnews/internal/http/handlers/activation/activate_user"
	sendactivationemail "tabnews/internal/http/handlers/activation/send_activation_email"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	activationRouter := chi.NewRouter()
	activationRouter.Method(http.MethodPost, "/", sendactivationemail.New(s.SendActivationEmail, isTestMode))
	activationRouter.Method(http.MethodPatch, "/", activateuser.New(s.ActivateUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api/v1/activation", activationRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
