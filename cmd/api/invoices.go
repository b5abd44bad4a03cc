package main

import (
	"net/http"
)

func (app *application) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoices, err := app.store.Invoice.List(ctx)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, invoices); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}
