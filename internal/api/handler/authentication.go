package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
	"github.com/vfg2006/dataops-local/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna o operador identificado pelo token
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"username":   claims.Username,
			"role_id":    claims.UserRoleID,
			"expires_at": claims.ExpiresAt,
		})
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	code := authenticating.APICode(err)
	if code == apiErrors.ErrInternalServer {
		logrus.WithError(err).Error("Erro inesperado no login")
		apiErrors.WriteError(w, code, "Erro interno ao realizar login", nil)
		return
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}
