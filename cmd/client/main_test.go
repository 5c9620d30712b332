package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-rest-kit/internal/adapter"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/version":
			_ = json.NewEncoder(w).Encode(models.Envelope{Data: models.AppBuildInfo{Version: "1.0.0"}})
		case "/api/articles/4":
			_ = json.NewEncoder(w).Encode(models.Envelope{Data: models.Article{ID: 4, Title: "four"}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.Envelope{Status: http.StatusNotFound, Error: "Page not found."})
		}
	}))
	defer srv.Close()

	client, err := adapter.NewAPIClient(adapter.Options{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name    string
		args    []string
		want    any
		wantErr error
	}{
		{name: "no command", wantErr: errUsage},
		{name: "unknown command", args: []string{"frobnicate"}, wantErr: errUsage},
		{name: "get without id", args: []string{"get"}, wantErr: errUsage},
		{name: "version", args: []string{"version"}, want: models.AppBuildInfo{Version: "1.0.0"}},
		{name: "get", args: []string{"get", "4"}, want: models.Article{ID: 4, Title: "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(ctx, client, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("bad id", func(t *testing.T) {
		_, err := run(ctx, client, []string{"delete", "x"})
		assert.EqualError(t, err, `invalid article id "x"`)
	})

	t.Run("server fault", func(t *testing.T) {
		_, err := run(ctx, client, []string{"get", "9"})
		assert.EqualError(t, err, "Page not found.")
	})
}
