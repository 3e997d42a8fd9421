// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"persons/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PersonHandler *handler.PersonHandler
	CEPHandler    *handler.CEPHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler *handler.PersonHandler
	cepHandler    *handler.CEPHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler: params.PersonHandler,
		cepHandler:    params.CEPHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Person record lifecycle
	personGroup := e.Group("/persons")
	{
		personGroup.POST("", r.personHandler.Create)
		personGroup.GET("", r.personHandler.List)
		personGroup.GET("/:id", r.personHandler.Get)
		personGroup.PUT("/:id", r.personHandler.Update)
		personGroup.PATCH("/:id/cep", r.personHandler.UpdateCEP)
		personGroup.DELETE("/:id", r.personHandler.Delete)
	}

	// Lookup passthrough
	e.GET("/cep/:code", r.cepHandler.Resolve)
}
