package domain

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleAnalyst = 2
)

var roleNames = map[string]int{
	"admin":   RoleAdmin,
	"analyst": RoleAnalyst,
}

// ParseRole converte o nome do perfil (admin, analyst) no ID usado nos tokens
func ParseRole(name string) (int, error) {
	role, ok := roleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("perfil desconhecido: %s", name)
	}
	return role, nil
}

// IsKnownRole verifica se o ID de perfil existe
func IsKnownRole(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleAnalyst
}

// Claims representa as informações do usuário carregadas no token JWT
type Claims struct {
	UserSubject string `json:"sub_name"`
	UserRoleID  int    `json:"role_id"`
	jwt.RegisteredClaims
}
