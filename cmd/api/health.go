package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "available",
		"version": "0.0.1",
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err.Error())
	}
}
