package main

import (
	"net/http"
)

func (app *application) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transactions, err := app.store.Transaction.List(ctx)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, transactions); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid transaction id")
		return
	}

	ctx := r.Context()
	transactions, err := app.store.Transaction.GetByID(ctx, id)
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, transactions); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, "failed to write response")
	}
}
