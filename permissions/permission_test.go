package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"campnest/permissions"
	"campnest/shared/constant"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{
			name:     "public endpoint",
			path:     "/v1/auth/login",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:     "trailing slash resolves to the same endpoint",
			path:     "/v1/campsites/",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:     "authenticated endpoint",
			path:     "/v1/bookings",
			method:   http.MethodPost,
			wantRole: []string{constant.RoleClient, constant.RoleAdmin},
		},
		{
			name:     "admin only endpoint",
			path:     "/v1/admin/stats",
			method:   http.MethodGet,
			wantRole: []string{constant.RoleAdmin},
		},
		{
			name:   "unknown endpoint",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, perm.Skip)

			if tt.wantRole != nil {
				assert.ElementsMatch(t, tt.wantRole, perm.Permissions)
			}
		})
	}
}
