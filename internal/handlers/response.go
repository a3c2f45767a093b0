package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"schneider.vip/problem"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON writes a 400 problem itself when the body cannot be decoded.
// An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	_, _ = problem.Of(http.StatusBadRequest).
		Append(problem.Title("Malformed request body")).
		Append(problem.Detail(err.Error())).
		Append(problem.Instance(r.URL.Path)).
		WriteTo(w)
	return err
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var p *problem.Problem
	if errors.As(err, &p) {
		_, _ = p.WriteTo(w)
		return
	}

	slog.Error("request failed", "path", r.URL.Path, "err", err.Error())
	_, _ = problem.Of(http.StatusInternalServerError).
		Append(problem.Title("Internal Server Error")).
		Append(problem.Instance(r.URL.Path)).
		WriteTo(w)
}
