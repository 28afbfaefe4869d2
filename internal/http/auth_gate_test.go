package handlers_test

import (
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Every admin route must 401 without credentials or with a wrong
// password, and the rejected request must not touch the stores.
func TestAdminRoutesRejectBadCredentials(t *testing.T) {
	app, st := newTestApp(t)
	someID := primitive.NewObjectID().Hex()

	routes := []struct {
		method, path string
		body         any
	}{
		{"GET", "/api/brands/all", nil},
		{"POST", "/api/brands", map[string]any{"name": "X", "slug": "x", "logo_url": "l", "banner_url": "b", "description": "d"}},
		{"PUT", "/api/brands/" + someID, map[string]any{"name": "X"}},
		{"DELETE", "/api/brands/" + someID, nil},
		{"POST", "/api/products", map[string]any{"name": "X"}},
		{"PUT", "/api/products/" + someID, map[string]any{"name": "X"}},
		{"DELETE", "/api/products/" + someID, nil},
		{"GET", "/api/messages", nil},
		{"PUT", "/api/messages/" + someID + "/read", nil},
		{"DELETE", "/api/messages/" + someID, nil},
		{"PUT", "/api/settings", map[string]any{"hero_title": "X"}},
	}

	for _, rt := range routes {
		// no credentials at all
		resp, err := app.Test(jsonReq(t, rt.method, rt.path, rt.body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s without creds: expected 401, got %d", rt.method, rt.path, resp.StatusCode)
		}

		// right user, wrong password
		req := jsonReq(t, rt.method, rt.path, rt.body)
		req.SetBasicAuth(testAdminUser, "wrongpass")
		resp, err = app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s wrong password: expected 401, got %d", rt.method, rt.path, resp.StatusCode)
		}
	}

	if len(st.brands.docs) != 0 || len(st.products.docs) != 0 || len(st.messages.docs) != 0 || st.settings.doc != nil {
		t.Fatal("rejected requests mutated a store")
	}
}

func TestAdminRouteAcceptsCorrectCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(adminReq(t, "GET", "/api/brands/all", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with valid creds, got %d", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, st := newTestApp(t)

	resp, err := app.Test(jsonReq(t, "GET", "/api/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["status"] != "healthy" || body["database"] != "connected" {
		t.Fatalf("unexpected health body: %v", body)
	}

	st.pinger.err = errStoreDown
	resp, err = app.Test(jsonReq(t, "GET", "/api/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 when ping fails, got %d", resp.StatusCode)
	}
	down := decode[map[string]string](t, resp)
	if down["status"] != "unhealthy" {
		t.Fatalf("unexpected unhealthy body: %v", down)
	}
	if down["error"] == errStoreDown.Error() {
		t.Fatal("raw store error leaked into response")
	}
}
