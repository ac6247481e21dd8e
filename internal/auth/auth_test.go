package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", Claims{AccountID: 7, EmployeeID: 12, Role: RoleManager}, time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.AccountID != 7 || claims.EmployeeID != 12 || claims.Role != RoleManager {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{AccountID: 1, Role: RoleEmployee}, time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", Claims{AccountID: 1, Role: RoleEmployee}, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestAllowed(t *testing.T) {
	cases := []struct {
		role   string
		prefix string
		want   bool
	}{
		{RoleAdmin, RolePayroll, true},
		{RoleHR, RoleHR, true},
		{RoleHR, RoleEmployee, true},
		{RoleHR, RolePayroll, false},
		{RoleEmployee, RoleEmployee, true},
		{RoleEmployee, RoleManager, false},
		{RoleManager, RoleManager, true},
		{RolePayroll, RoleAdmin, false},
	}
	for _, tc := range cases {
		if got := Allowed(tc.role, tc.prefix); got != tc.want {
			t.Fatalf("Allowed(%s, %s) = %v, want %v", tc.role, tc.prefix, got, tc.want)
		}
	}
}
