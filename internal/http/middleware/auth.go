package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/http/response"
	"github.com/Vipul160305/placetrack/internal/security"
)

type contextKey string

const ContextAccountKey contextKey = "account"

// AuthMiddleware verifies the bearer credential and resolves it to a
// live account before any handler runs.
type AuthMiddleware struct {
	jwt      *security.JWTProvider
	accounts account.Repository
}

func NewAuthMiddleware(jwt *security.JWTProvider, accounts account.Repository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, accounts: accounts}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		accountID, err := common.ParseUUID(claims.AccountID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid account id", err))
			return
		}
		acc, err := m.accounts.GetByID(r.Context(), accountID)
		if err != nil {
			if common.Is(err, common.CodeNotFound) {
				// Token survives its account; the session does not.
				response.Error(w, common.NewError(common.CodeUnauthorized, "account no longer exists", nil))
				return
			}
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ContextAccountKey, acc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler behind an explicit allowed-role set.
func RequireRole(roles ...account.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc, ok := AccountFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "unauthenticated", nil))
				return
			}
			for _, role := range roles {
				if acc.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func AccountFromContext(ctx context.Context) (*account.Account, bool) {
	acc, ok := ctx.Value(ContextAccountKey).(*account.Account)
	return acc, ok
}
