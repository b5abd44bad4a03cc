package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/financial-management/internal/response"
	"github.com/dcastellanos/financial-management/internal/store"
)

type CustomerResponse = response.APIResponse[*store.Customer]
type DeleteCustomerResponse = response.APIResponse[any]

type customerInput struct {
	FullName             string  `json:"full_name"`
	NumberIdentification int64   `json:"number_identification"`
	Address              *string `json:"address"`
	Phone                *int64  `json:"phone"`
	Email                *string `json:"email"`
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (app *application) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := app.store.Customer.List(ctx)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	// The UI consumes the bare array, not an envelope.
	if err := writeJSON(w, http.StatusOK, customers); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

// handleGetCustomer answers with an array of zero or one rows; absence
// is an empty array, not a 404.
func (app *application) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}

	ctx := r.Context()
	customers, err := app.store.Customer.GetByID(ctx, id)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, customers); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input customerInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid request payload")
		return
	}

	customer := &store.Customer{
		FullName:             input.FullName,
		NumberIdentification: input.NumberIdentification,
		Address:              input.Address,
		Phone:                input.Phone,
		Email:                input.Email,
	}

	ctx := r.Context()
	if err := app.store.Customer.Create(ctx, customer); err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			writeJSONError(w, r, http.StatusBadRequest, "full_name and number_identification are required")
			return
		}
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	resp := &CustomerResponse{
		Status:  "success",
		Message: "Customer created successfully",
		Data:    customer,
	}

	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}

	var input customerInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid request payload")
		return
	}

	customer := &store.Customer{
		IDCustomer:           id,
		FullName:             input.FullName,
		NumberIdentification: input.NumberIdentification,
		Address:              input.Address,
		Phone:                input.Phone,
		Email:                input.Email,
	}

	ctx := r.Context()
	if err := app.store.Customer.Update(ctx, customer); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeJSONError(w, r, http.StatusNotFound, "Customer not found")
		case errors.Is(err, store.ErrMissingFields):
			writeJSONError(w, r, http.StatusBadRequest, "full_name and number_identification are required")
		default:
			writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := &CustomerResponse{
		Status:  "success",
		Message: "Customer updated successfully",
		Data:    customer,
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}

	ctx := r.Context()
	invoicesDeleted, err := app.store.Customer.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, r, http.StatusNotFound, "Customer not found")
			return
		}
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	resp := &DeleteCustomerResponse{
		Status:  "success",
		Message: fmt.Sprintf("Customer deleted successfully. %d associated invoice(s) were also deleted.", invoicesDeleted),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListCustomerInvoices(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}

	ctx := r.Context()
	invoices, err := app.store.Invoice.ListByCustomer(ctx, id)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, invoices); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}
