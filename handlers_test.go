package main

import "testing"

// Malformed identifiers must answer 400 instead of surfacing a driver
// fault, on every id-bearing route that parses before hitting storage.
func TestMalformedIDRejected(t *testing.T) {
	s, r := newTestServer()
	token := mustToken(t, s, "alice@example.com")

	cases := []struct {
		method string
		path   string
		token  string
	}{
		{"DELETE", "/deleteBanner/nope", ""},
		{"PATCH", "/users/admin/nope", ""},
		{"DELETE", "/user/nope", ""},
		{"GET", "/items/nope", ""},
		{"GET", "/editReviews/nope", ""},
		{"DELETE", "/cards/nope", ""},
		{"DELETE", "/review/nope", token},
	}
	for _, tc := range cases {
		w := doJSON(r, tc.method, tc.path, "", tc.token)
		if w.Code != 400 {
			t.Fatalf("%s %s: expected 400 for malformed id, got %d", tc.method, tc.path, w.Code)
		}
	}
}
