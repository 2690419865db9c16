package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

type addCustomerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type loyaltyRequest struct {
	Points int `json:"points"`
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"customers": MapCustomersToDTO(customers)})
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customerSvc.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{"customer": MapCustomerToDTO(c)})
}

func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req addCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.customerSvc.AddCustomer(r.Context(), req.ID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Customer added successfully", envelope{"customer": MapCustomerToDTO(c)})
}

func (h *CustomerHandler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customerSvc.RemoveCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Customer removed successfully", nil)
}

func (h *CustomerHandler) RateCustomer(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, accepted, err := h.customerSvc.RateCustomer(r.Context(), mux.Vars(r)["id"], req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Customer rated successfully", envelope{
		"accepted": accepted,
		"customer": MapCustomerToDTO(c),
	})
}

func (h *CustomerHandler) AddLoyaltyPoints(w http.ResponseWriter, r *http.Request) {
	var req loyaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.customerSvc.AddLoyaltyPoints(r.Context(), mux.Vars(r)["id"], req.Points)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Loyalty points added", envelope{"customer": MapCustomerToDTO(c)})
}
