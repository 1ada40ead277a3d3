package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func Index(w http.ResponseWriter) {
	Message(w, http.StatusOK, "ytchecklist index")
}

func Message(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	response := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	body, marshalErr := json.Marshal(response)
	if marshalErr != nil {
		fmt.Fprintf(w, `{"message": %q}`, message)
		return
	}
	w.Write(body)
}

// Error writes only the user facing message. Internal causes are logged by
// the caller and never returned.
func Error(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	response := struct {
		Error string `json:"error"`
	}{
		Error: message,
	}
	body, marshalErr := json.Marshal(response)
	if marshalErr != nil {
		fmt.Fprintf(w, `{"error": %q}`, message)
		return
	}
	w.Write(body)
}

func JSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.WriteHeader(status)
	w.Write(body)

	return nil
}
