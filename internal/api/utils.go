package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var ErrSubjectNotFound = errors.New("no scans found for this subject")

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"errorMessage"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	messageBody := ErrorResponse{
		StatusCode:   code,
		ErrorMessage: msg,
	}
	return respondWithJSON(w, code, messageBody)
}

func parseUrlQueryToBool(val string) *bool {
	var parsedVal *bool
	switch val {
	case "true":
		val := true
		parsedVal = &val
	case "false":
		val := false
		parsedVal = &val
	}

	return parsedVal
}

func formatErrorMessage(err error) string {
	errorMsg := err.Error()
	if len(errorMsg) > 0 {
		return strings.ToUpper(errorMsg[:1]) + errorMsg[1:]
	}
	return ""
}
