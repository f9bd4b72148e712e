package permissions_test

import (
	"net/http"
	"testing"
	"wbrent/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	policy := permissions.Get()
	require.NotNil(t, policy)

	assert.False(t, policy.Skip)
	assert.NotEmpty(t, policy.Endpoints)
}

func TestPolicy_Lookup(t *testing.T) {
	policy := permissions.Get()
	require.NotNil(t, policy)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{name: "public availability", path: "/v1/availability/{productId}", method: http.MethodGet, wantSkip: true},
		{name: "public booking", path: "/v1/reservations/", method: http.MethodPost, wantSkip: true},
		{name: "admin status change", path: "/v1/reservations/{id}", method: http.MethodPatch, wantRole: []string{"admin", "superadmin"}},
		{name: "lowercase method", path: "/v1/reservations/{id}", method: "patch", wantRole: []string{"admin", "superadmin"}},
		{name: "superadmin users", path: "/v1/users/", method: http.MethodGet, wantRole: []string{"superadmin"}},
		{name: "unknown route", path: "/v1/nope", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := policy.Lookup(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, rule.Skip)

			if tt.wantRole != nil {
				assert.Equal(t, tt.wantRole, rule.Roles)
			} else {
				assert.Empty(t, rule.Roles)
			}
		})
	}
}

func TestRule_Allows(t *testing.T) {
	adminOnly := permissions.Rule{Roles: []string{"admin", "superadmin"}}

	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("staff"))
	assert.False(t, adminOnly.Allows(""))
	assert.True(t, permissions.Rule{}.Allows("staff"))
	assert.True(t, permissions.Rule{Skip: true, Roles: []string{"superadmin"}}.Allows(""))
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		policy, err := permissions.Load([]byte(`{"endpoints":[{"path":"/a","method":"GET","roles":["admin"]}]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, policy.Lookup("/a", http.MethodGet).Roles)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("duplicate rule", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{"endpoints":[{"path":"/a","method":"GET"},{"path":"/a","method":"get"}]}`))
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("bad method", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{"endpoints":[{"path":"/a","method":"FETCH"}]}`))
		assert.ErrorContains(t, err, "invalid permission rule")
	})
}
