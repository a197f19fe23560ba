package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = fmt.Errorf("%s", msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// parseTimeParam accepts RFC3339 timestamps and bare dates. An empty value
// parses to nil.
func parseTimeParam(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t, err = time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("parse time %q: %w", v, err)
		}
	}

	return &t, nil
}

func parsePeriod(url url.Values) (time.Time, time.Time, error) {
	from, err := parseTimeParam(url.Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := parseTimeParam(url.Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if from == nil || to == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' and 'to' are required")
	}

	if to.Before(*from) {
		return time.Time{}, time.Time{}, fmt.Errorf("'to' %s is before 'from' %s", to, from)
	}

	return *from, *to, nil
}
