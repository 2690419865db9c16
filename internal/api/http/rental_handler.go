package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	Vehicle  string `json:"vehicle"`
	Customer string `json:"customer"`
	Days     int    `json:"days"`
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListActiveRentals(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"rentals": MapActiveRentalsToDTO(rentals)})
}

func (h *RentalHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rentalSvc.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"stats": MapRentalStatsToDTO(stats)})
}

func (h *RentalHandler) RentVehicle(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.rentalSvc.RentVehicle(r.Context(), req.Vehicle, req.Customer, req.Days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Vehicle rented successfully", envelope{"rental": MapRentalReceiptToDTO(receipt)})
}

func (h *RentalHandler) ReturnVehicle(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.rentalSvc.ReturnVehicle(r.Context(), mux.Vars(r)["vehicleId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	message := "Vehicle returned successfully"
	if !receipt.Returned {
		message = "Vehicle was not rented"
	}
	writeSuccess(w, http.StatusOK, message, envelope{"return": MapReturnReceiptToDTO(receipt)})
}
