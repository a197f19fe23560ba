package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	mux := http.NewServeMux()
	mux.HandleFunc("/payments/pay-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"id": "pay-1"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewJWTRoundTripper(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(
		context.Background(),
		http.MethodGet, server.URL+"/payments/pay-1",
		strings.NewReader(""),
	)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, buf.String(),
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/payments/pay-1"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/payments/pay-1"}
`, now, server.URL, now, server.URL))
}
