package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as credenciais do token de operador da API administrativa
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleOperator = "operator"
