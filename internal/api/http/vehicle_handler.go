package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/utils"
)

type VehicleHandler struct {
	fleetSvc service.FleetService
}

func NewVehicleHandler(fleetSvc service.FleetService) *VehicleHandler {
	return &VehicleHandler{fleetSvc: fleetSvc}
}

type addVehicleRequest struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Model     string          `json:"model"`
	Rate      decimal.Decimal `json:"rate"`
	Equipment map[string]bool `json:"equipment"`
}

type addFeatureRequest struct {
	Name      string          `json:"name"`
	DailyCost decimal.Decimal `json:"dailyCost"`
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

// ListVehicles returns the fleet, or only available vehicles with ?available=true.
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	availableOnly := false
	if v := r.URL.Query().Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid available parameter")
			return
		}
		availableOnly = b
	}

	vehicles, err := h.fleetSvc.ListVehicles(r.Context(), availableOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"vehicles": MapVehiclesToDTO(vehicles)})
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.fleetSvc.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"vehicle": MapVehicleToDTO(v)})
}

func (h *VehicleHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req addVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.fleetSvc.AddVehicle(r.Context(), service.AddVehicleRequest{
		ID:            req.ID,
		Kind:          req.Type,
		Model:         req.Model,
		BaseDailyRate: req.Rate,
		Equipment:     req.Equipment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Vehicle added successfully", envelope{"vehicle": MapVehicleToDTO(v)})
}

func (h *VehicleHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.fleetSvc.RemoveVehicle(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Vehicle removed successfully", nil)
}

func (h *VehicleHandler) AddFeature(w http.ResponseWriter, r *http.Request) {
	var req addFeatureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.fleetSvc.AddFeature(r.Context(), mux.Vars(r)["id"], req.Name, req.DailyCost)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Feature added successfully", envelope{"vehicle": MapVehicleToDTO(v)})
}

// RateVehicle records a rating. Out-of-range ratings are ignored rather than
// failing the request; "accepted" tells the caller which happened.
func (h *VehicleHandler) RateVehicle(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, accepted, err := h.fleetSvc.RateVehicle(r.Context(), mux.Vars(r)["id"], req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Vehicle rated successfully", envelope{
		"accepted": accepted,
		"vehicle":  MapVehicleToDTO(v),
	})
}

// QuoteRental prices a rental either by ?days=N or by a ?pickup=&dropoff= date range.
func (h *VehicleHandler) QuoteRental(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	id := mux.Vars(r)["id"]

	var (
		q   utils.RentalCostBreakdown
		err error
	)
	if pickup := query.Get("pickup"); pickup != "" {
		q, err = h.fleetSvc.QuoteRentalForDates(r.Context(), id, pickup, query.Get("dropoff"))
	} else {
		days, convErr := strconv.Atoi(query.Get("days"))
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "Invalid number format")
			return
		}
		q, err = h.fleetSvc.QuoteRental(r.Context(), id, days)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"quote": MapQuoteToDTO(q)})
}
