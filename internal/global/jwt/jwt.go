package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt"

	"controle-estagiarios/config"
)

// Payload identifies the authenticated operator. The system is
// single-tenant: there is one administrative account, but RoleID keeps
// the door open for read-only operators.
type Payload struct {
	Subject string `json:"sub"`
	RoleID  int    `json:"role_id"`
}

type Claims struct {
	Payload
	jwtlib.StandardClaims
}

// CreateToken signs an access token for the given payload.
func CreateToken(p Payload) string {
	cfg := config.Get().JWT
	claims := Claims{
		Payload: p,
		StandardClaims: jwtlib.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
			Issuer:    "controle-estagiarios",
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(signed string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(signed, claims, func(t *jwtlib.Token) (interface{}, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
