package pprof

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerLoopbackOnly(t *testing.T) {
	type testCase struct {
		RemoteAddr     string
		AllowRemote    bool
		ExpectedStatus int
	}

	testCases := []testCase{
		{RemoteAddr: "127.0.0.1:4242", AllowRemote: false, ExpectedStatus: http.StatusOK},
		{RemoteAddr: "[::1]:4242", AllowRemote: false, ExpectedStatus: http.StatusOK},
		{RemoteAddr: "203.0.113.7:4242", AllowRemote: false, ExpectedStatus: http.StatusForbidden},
		{RemoteAddr: "203.0.113.7:4242", AllowRemote: true, ExpectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.RemoteAddr, func(t *testing.T) {
			handler := NewHandler("/debug/", tc.AllowRemote)

			req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
			req.RemoteAddr = tc.RemoteAddr

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}
		})
	}
}
