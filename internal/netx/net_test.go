package netx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		inferred bool
		wantErr  bool
	}{
		{name: "explicit http kept", in: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "explicit https kept", in: "https://api.example.com", want: "https://api.example.com"},
		{name: "trailing slash stripped", in: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "loopback gets http", in: "localhost:8000", want: "http://localhost:8000", inferred: true},
		{name: "127.0.0.1 gets http", in: "127.0.0.1:8000", want: "http://127.0.0.1:8000", inferred: true},
		{name: "remote host gets https", in: "api.example.com", want: "https://api.example.com", inferred: true},
		{name: "local suffix gets http", in: "backend.local:9000", want: "http://backend.local:9000", inferred: true},
		{name: "empty rejected", in: "   ", wantErr: true},
		{name: "scheme only rejected", in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inferred, err := NormalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.inferred, inferred)
		})
	}
}

func TestJoinEndpoint(t *testing.T) {
	base := "http://localhost:8000"

	assert.Equal(t, base+"/api/notes", JoinEndpoint(base, "/api/notes"))
	assert.Equal(t, base+"/api/notes", JoinEndpoint(base, "api/notes"))
	assert.Equal(t, base+"/api/notes", JoinEndpoint(base, "///api/notes"))
}

func TestIsLocalHost(t *testing.T) {
	assert.True(t, IsLocalHost("localhost"))
	assert.True(t, IsLocalHost("localhost:8000"))
	assert.True(t, IsLocalHost("127.0.0.1"))
	assert.True(t, IsLocalHost("[::1]:8000"))
	assert.False(t, IsLocalHost("api.example.com"))
	assert.False(t, IsLocalHost("example.com:443"))
}
