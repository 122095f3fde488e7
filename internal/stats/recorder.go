package stats

import (
	"net/http"
)

// ResponseWriter is an http.ResponseWriter that remembers what was written.
type ResponseWriter interface {
	http.ResponseWriter
	Status() int   // Gets the status of the response
	Written() bool // Checks whether the response has been written to
	Size() int     // Gets the size of the response body
}

// responseRecorder is an implementation of http.ResponseWriter that keeps track of its HTTP status
// code and body size
type responseRecorder struct {
	http.ResponseWriter
	status  int
	size    int
	written bool
}

// NewResponseRecorder creates a new responseRecorder that wraps the provided http.ResponseWriter
func NewResponseRecorder(w http.ResponseWriter, statusCode int) ResponseWriter {
	return &responseRecorder{ResponseWriter: w, status: statusCode}
}

func (r *responseRecorder) WriteHeader(code int) {
	r.written = true
	r.ResponseWriter.WriteHeader(code)
	r.status = code
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.Written() {
		r.WriteHeader(http.StatusOK)
	}

	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// Status returns the HTTP status of the response
func (r *responseRecorder) Status() int {
	return r.status
}

// Written checks if the ResponseWriter has been written
func (r *responseRecorder) Written() bool {
	return r.status != 0
}

// Size returns the size of the response body
func (r *responseRecorder) Size() int {
	return r.size
}
