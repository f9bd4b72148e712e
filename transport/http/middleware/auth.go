package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"wbrent/config"
	"wbrent/infras/jwt"
	"wbrent/infras/otel"
	"wbrent/permissions"
	"wbrent/shared/constant"
	"wbrent/shared/failure"
	"wbrent/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// internalCallKey marks requests that presented the service API key.
type internalCallKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is mounted as APIKey, then Auth, then RBAC. Routes the policy
// marks as skipped (availability, reservation create) pass through all three.
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	policy     *permissions.Policy
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, policy *permissions.Policy, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		policy:     policy,
		cfg:        cfg,
	}
}

var tokenErrors = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

func tokenFailure(err error) error {
	for _, known := range tokenErrors {
		if errors.Is(err, known.err) {
			return failure.Unauthorized(known.message) // nolint:wrapcheck
		}
	}

	return failure.Unauthorized("Token validation failed") // nolint:wrapcheck
}

func deny(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

func internalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

// Auth validates the bearer access token and puts the caller's identity on
// the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(r)
		if internalCall(ctx) || m.policy.Lookup(path, r.Method).Skip {
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttributes(map[string]any{"http.path": path, "http.method": r.Method})

		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == constant.Empty {
			deny(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			deny(w, scope, tokenFailure(err))

			return
		}

		if claims.UserID == constant.Empty || claims.Email == constant.Empty {
			log.Warn().Str("token_id", claims.TokenID).Msg("access token without user id or email")
			deny(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = r.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RBAC checks the caller's role against the policy rule for the route.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if internalCall(ctx) {
			next.ServeHTTP(w, r)

			return
		}

		if m.policy == nil {
			deny(w, scope, failure.ForbiddenError)

			return
		}

		if m.policy.Skip {
			next.ServeHTTP(w, r)

			return
		}

		rule := m.policy.Lookup(routePattern(r), r.Method)
		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !rule.Allows(role) {
			scope.SetAttributes(map[string]any{"user_role": role, "allowed_roles": rule.Roles})
			deny(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey lets other services call the API with X-API-Key instead of a token.
// A wrong key is rejected outright rather than falling back to token auth.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
			deny(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), internalCallKey{}, true)))
	})
}

// routePattern resolves the registered pattern (e.g. /v1/reservations/{id})
// before chi has routed the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}
