package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Claims identifica o operador autenticado nas rotas protegidas
type Claims struct {
	Username   string `json:"username"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
