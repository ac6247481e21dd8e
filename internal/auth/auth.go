// Package auth issues and validates the bearer tokens the mock backend
// hands out. A token carries the account's business role; route guards
// compare it against the role prefix of the requested operation.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleEmployee = "Employee"
	RoleHR       = "HR"
	RoleManager  = "Manager"
	RolePayroll  = "Payroll"
	RoleAdmin    = "Admin"
)

type Claims struct {
	AccountID  int    `json:"aid"`
	EmployeeID int    `json:"eid,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func GenerateToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Allowed reports whether a role may call operations under the given role
// prefix. Admin reaches everything; HR additionally covers the employee
// surface for support workflows.
func Allowed(role, prefix string) bool {
	if role == RoleAdmin {
		return true
	}
	if role == prefix {
		return true
	}
	return role == RoleHR && prefix == RoleEmployee
}
