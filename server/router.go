package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// EarningsHandler is the handler surface the router mounts.
type EarningsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	earningsHandler EarningsHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	earningsHandler EarningsHandler,
	router *mux.Router) *Router {
	return &Router{
		earningsHandler: earningsHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?top_n={int}&blocks={bool}
	r.router.HandleFunc("/v1/earnings/summary", r.earningsHandler.GetSummary).Methods("GET")

	r.router.HandleFunc("/v1/earnings/chart", r.earningsHandler.GetChart).Methods("GET")

	r.router.HandleFunc("/ping", r.earningsHandler.Ping).Methods("GET")
}
