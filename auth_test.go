package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestTokenRoundTrip(t *testing.T) {
	s, _ := newTestServer()

	token, err := s.issueToken("shopper@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	claims, err := s.parseToken(token)
	if err != nil {
		t.Fatalf("parse of freshly issued token failed: %v", err)
	}
	if claims.Email != "shopper@example.com" {
		t.Fatalf("expected claims email shopper@example.com, got %q", claims.Email)
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("expected roughly one day of validity, got %v", ttl)
	}
}

func TestTokenForeignSecretRejected(t *testing.T) {
	s, _ := newTestServer()
	other := &Server{cfg: Config{JWTSecret: []byte("some-other-secret")}}

	token := mustToken(t, other, "shopper@example.com")
	if _, err := s.parseToken(token); err == nil {
		t.Fatal("expected token signed with a foreign secret to be rejected")
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	s, _ := newTestServer()

	claims := AuthClaims{
		Email: "shopper@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.JWTSecret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	if _, err := s.parseToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestCreateTokenIgnoresUnknownFields(t *testing.T) {
	s, r := newTestServer()

	w := doJSON(r, "POST", "/jwt", `{"email":"shopper@example.com","role":"admin","x":1}`, "")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, err := s.parseToken(resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Email != "shopper@example.com" {
		t.Fatalf("expected claims email shopper@example.com, got %q", claims.Email)
	}
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	_, r := newTestServer()

	w := doJSON(r, "GET", "/cards", "", "")
	if w.Code != 401 {
		t.Fatalf("expected 401 without authorization header, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized access") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRequiredMalformedToken(t *testing.T) {
	_, r := newTestServer()

	w := doJSON(r, "GET", "/cards", "", "not-a-real-token")
	if w.Code != 401 {
		t.Fatalf("expected 401 for malformed token, got %d", w.Code)
	}
}

func TestAuthRequiredNoBearerPrefix(t *testing.T) {
	s, r := newTestServer()

	token := mustToken(t, s, "shopper@example.com")
	req := httptest.NewRequest("GET", "/cards", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401 without Bearer prefix, got %d", w.Code)
	}
}
