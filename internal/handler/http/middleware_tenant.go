package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
)

// tenantScope rejects requests whose {tenant} path segment differs from the
// tenant of the presented token. It must run after auth.
func (h *Handler) tenantScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tenant, ok := utils.GetTenantFromContext(r.Context())
		if !ok {
			log.Error().Str("func", "*Handler.tenantScope").Msg("no tenant in request context")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if pathTenant := chi.URLParam(r, "tenant"); pathTenant != tenant {
			log.Warn().
				Str("func", "*Handler.tenantScope").
				Str("path_tenant", pathTenant).
				Str("token_tenant", tenant).
				Msg("access to foreign tenant")
			utils.WriteError(w, ErrForeignTenant.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
