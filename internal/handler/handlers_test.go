package handler

import (
	"testing"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "only http", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "only grpc", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "none", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Handlers only store the services pointer at construction time.
			h, err := NewHandlers(&service.Services{}, nil, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
