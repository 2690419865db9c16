package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/service"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Fleet     service.FleetService
	Customers service.CustomerService
	Rentals   service.RentalService
	Reports   service.ReportService
}

// NewRouter builds the HTTP API. Routes under /api/v1 run inside the caller's
// session; /healthz does not.
func NewRouter(svcs Services, sessions SessionProvider, cookieName string) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(SessionMiddleware(sessions, cookieName))
	RegisterRoutes(api, svcs)
	return router
}

// RegisterRoutes registers the vehicle, customer, rental and report endpoints.
func RegisterRoutes(router *mux.Router, svcs Services) {
	vehicles := NewVehicleHandler(svcs.Fleet)
	router.HandleFunc("/vehicles", vehicles.ListVehicles).Methods(http.MethodGet)
	router.HandleFunc("/vehicles", vehicles.AddVehicle).Methods(http.MethodPost)
	router.HandleFunc("/vehicles/{id}", vehicles.GetVehicle).Methods(http.MethodGet)
	router.HandleFunc("/vehicles/{id}", vehicles.RemoveVehicle).Methods(http.MethodDelete)
	router.HandleFunc("/vehicles/{id}/features", vehicles.AddFeature).Methods(http.MethodPost)
	router.HandleFunc("/vehicles/{id}/ratings", vehicles.RateVehicle).Methods(http.MethodPost)
	router.HandleFunc("/vehicles/{id}/quote", vehicles.QuoteRental).Methods(http.MethodGet)

	customers := NewCustomerHandler(svcs.Customers)
	router.HandleFunc("/customers", customers.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers", customers.AddCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customers/{id}", customers.GetCustomer).Methods(http.MethodGet)
	router.HandleFunc("/customers/{id}", customers.RemoveCustomer).Methods(http.MethodDelete)
	router.HandleFunc("/customers/{id}/ratings", customers.RateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customers/{id}/loyalty", customers.AddLoyaltyPoints).Methods(http.MethodPost)

	rentals := NewRentalHandler(svcs.Rentals)
	router.HandleFunc("/rentals", rentals.ListRentals).Methods(http.MethodGet)
	router.HandleFunc("/rentals", rentals.RentVehicle).Methods(http.MethodPost)
	router.HandleFunc("/rentals/stats", rentals.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/rentals/{vehicleId}/return", rentals.ReturnVehicle).Methods(http.MethodPost)

	reports := NewReportHandler(svcs.Reports)
	router.HandleFunc("/reports/{type}", reports.GetReport).Methods(http.MethodGet)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"status": "ok"})
}
