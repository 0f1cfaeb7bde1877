package main

import (
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a Server with a fixed secret and a mailer that
// records nothing. Tests only exercise paths that decide before touching
// the database.
func newTestServer() (*Server, *gin.Engine) {
	s := &Server{
		cfg: Config{Port: "5000", JWTSecret: []byte("test-secret")},
		mailer: &Mailer{
			jobs: make(chan mailJob, 4),
			send: func(mailJob) error { return nil },
		},
	}
	r := gin.New()
	s.routes(r)
	return s, r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustToken(t interface{ Fatalf(string, ...interface{}) }, s *Server, email string) string {
	token, err := s.issueToken(email)
	if err != nil {
		t.Fatalf("issue token for %s: %v", email, err)
	}
	return token
}
