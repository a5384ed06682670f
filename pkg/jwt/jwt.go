package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Portales del panel.
const (
	PortalAdmin  = "admin"
	PortalClient = "client"
)

// Claims incluye los claims estándar JWT más el portal activo de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Portal string `json:"portal"` // "admin" | "client"
}

// ValidPortal informa si p es un portal conocido.
func ValidPortal(p string) bool {
	return p == PortalAdmin || p == PortalClient
}

// Generate genera un token firmado HS256 para el portal indicado.
func Generate(secret, portal, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if !ValidPortal(portal) {
		return "", fmt.Errorf("jwt: portal %q desconocido", portal)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   portal,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Portal: portal,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el portal.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (portal string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !ValidPortal(claims.Portal) {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Portal, nil
}
