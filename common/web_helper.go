package common

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPError represents an error-compatible struct to hold http status code
// along with the error message
type HTTPError struct {
	Code    int
	Message string
}

func (he HTTPError) Error() string {
	return he.Message
}

// NewHTTPError creates an HTTPError with a given status code
// and a printf-style message
func NewHTTPError(code int, format string, args ...interface{}) HTTPError {
	return HTTPError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// DataHandler is a common API handler receiving http request
// and returning whatever JSON-able data
type DataHandler func(*http.Request) (interface{}, error)

type httpErrorResponse struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, e error) {
	he, ok := e.(HTTPError)
	if !ok {
		he = HTTPError{Code: http.StatusInternalServerError, Message: e.Error()}
	}

	data, err := json.Marshal(httpErrorResponse{Error: he.Message})
	if err != nil {
		// this shouldn't ever happen
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "internal server error"}`))
		return
	}
	w.WriteHeader(he.Code)
	w.Write(data)
}

// JSONResponse converts DataHandler to a http.HandlerFunc
func JSONResponse(handler DataHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		responseData, err := handler(r)
		if err != nil {
			writeJSONError(w, err)
			return
		}
		data, err := json.Marshal(responseData)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "internal server error / marshalling error"}`))
			return
		}
		w.Write(data)
	}
}
