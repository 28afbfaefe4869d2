package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"stridewear/internal/apperr"
	"stridewear/internal/config"
	"stridewear/internal/domain"
	"stridewear/internal/http/handlers"
	"stridewear/internal/services"
)

const (
	testAdminUser = "admin"
	testAdminPass = "s3cret!"
)

var errStoreDown = errors.New("connection refused 10.0.0.5:27017")

// ---------- in-memory stores (the Mongo collections' test doubles) ----------

type fakeBrandStore struct {
	docs []domain.Brand
}

func (f *fakeBrandStore) List(_ context.Context, includeHidden bool) ([]domain.Brand, error) {
	out := []domain.Brand{}
	for _, b := range f.docs {
		if includeHidden || b.Visible {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeBrandStore) Insert(_ context.Context, b domain.Brand) (domain.Brand, error) {
	b.ID = primitive.NewObjectID()
	f.docs = append(f.docs, b)
	return b, nil
}

func (f *fakeBrandStore) Update(_ context.Context, id primitive.ObjectID, b domain.Brand) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			b.ID = id
			b.CreatedAt = f.docs[i].CreatedAt
			f.docs[i] = b
			return nil
		}
	}
	return apperr.NotFoundf("brand")
}

func (f *fakeBrandStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("brand")
}

type fakeProductStore struct {
	docs []domain.Product
}

// List mirrors the listing query contract: hidden excluded, exact
// brand/category, case-insensitive substring search over name and
// description, empty term ignored, newest first.
func (f *fakeProductStore) List(_ context.Context, brand, category, search string) ([]domain.Product, error) {
	term := strings.ToLower(strings.TrimSpace(search))
	out := []domain.Product{}
	for _, p := range f.docs {
		if p.Status == domain.StatusHidden {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProductStore) Get(_ context.Context, id primitive.ObjectID) (domain.Product, error) {
	for _, p := range f.docs {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, apperr.NotFoundf("product")
}

func (f *fakeProductStore) Insert(_ context.Context, p domain.Product) (domain.Product, error) {
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, p)
	return p, nil
}

func (f *fakeProductStore) Update(_ context.Context, id primitive.ObjectID, p domain.Product) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			p.ID = id
			p.CreatedAt = f.docs[i].CreatedAt
			f.docs[i] = p
			return nil
		}
	}
	return apperr.NotFoundf("product")
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("product")
}

type fakeMessageStore struct {
	docs []domain.Message
}

func (f *fakeMessageStore) Insert(_ context.Context, m domain.Message) (domain.Message, error) {
	m.ID = primitive.NewObjectID()
	f.docs = append(f.docs, m)
	return m, nil
}

func (f *fakeMessageStore) List(_ context.Context) ([]domain.Message, error) {
	out := append([]domain.Message{}, f.docs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessageStore) MarkRead(_ context.Context, id primitive.ObjectID) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].Read = true
			return nil
		}
	}
	return apperr.NotFoundf("message")
}

func (f *fakeMessageStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("message")
}

type fakeSettingsStore struct {
	doc map[string]any // nil means the singleton was never written
}

func (f *fakeSettingsStore) Get(_ context.Context) (map[string]any, error) {
	if f.doc == nil {
		return nil, apperr.NotFoundf("settings")
	}
	return f.doc, nil
}

func (f *fakeSettingsStore) Put(_ context.Context, fields map[string]any) error {
	if f.doc == nil {
		f.doc = map[string]any{"key": domain.SettingsKey}
	}
	for k, v := range fields {
		if k == "_id" || k == "key" {
			continue
		}
		f.doc[k] = v
	}
	return nil
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context) error { return f.err }

type stores struct {
	brands   *fakeBrandStore
	products *fakeProductStore
	messages *fakeMessageStore
	settings *fakeSettingsStore
	pinger   *fakePinger
}

// newTestApp wires the full route table against in-memory stores.
func newTestApp(t *testing.T) (*fiber.App, *stores) {
	t.Helper()

	st := &stores{
		brands:   &fakeBrandStore{},
		products: &fakeProductStore{},
		messages: &fakeMessageStore{},
		settings: &fakeSettingsStore{},
		pinger:   &fakePinger{},
	}
	cfg := config.Config{
		AdminUsername:   testAdminUser,
		AdminPassword:   testAdminPass,
		DefaultSettings: domain.DefaultSettings(),
	}

	catalogSvc := services.NewCatalogService(st.brands, st.products)
	inboxSvc := services.NewInboxService(st.messages)
	settingsSvc := services.NewSettingsService(st.settings, cfg.DefaultSettings)
	statusSvc := services.NewStatusService(st.pinger)

	deps := &handlers.Deps{
		HealthHandler:   &handlers.HealthHandler{Status: statusSvc},
		BrandHandler:    &handlers.BrandHandler{Catalog: catalogSvc},
		ProductHandler:  &handlers.ProductHandler{Catalog: catalogSvc},
		MessageHandler:  &handlers.MessageHandler{Inbox: inboxSvc},
		SettingsHandler: &handlers.SettingsHandler{Settings: settingsSvc},
	}
	admin := handlers.RequireAdmin(cfg)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", deps.HealthHandler.Check)
	api.Get("/brands", deps.BrandHandler.ListPublic)
	api.Get("/brands/all", admin, deps.BrandHandler.ListAll)
	api.Post("/brands", admin, deps.BrandHandler.Create)
	api.Put("/brands/:id", admin, deps.BrandHandler.Update)
	api.Delete("/brands/:id", admin, deps.BrandHandler.Delete)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products", admin, deps.ProductHandler.Create)
	api.Put("/products/:id", admin, deps.ProductHandler.Update)
	api.Delete("/products/:id", admin, deps.ProductHandler.Delete)
	api.Post("/messages", deps.MessageHandler.Create)
	api.Get("/messages", admin, deps.MessageHandler.List)
	api.Put("/messages/:id/read", admin, deps.MessageHandler.MarkRead)
	api.Delete("/messages/:id", admin, deps.MessageHandler.Delete)
	api.Get("/settings", deps.SettingsHandler.Get)
	api.Put("/settings", admin, deps.SettingsHandler.Put)

	return app, st
}

func jsonReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, path, nil)
	} else {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = httptest.NewRequest(method, path, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func adminReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	r := jsonReq(t, method, path, body)
	r.SetBasicAuth(testAdminUser, testAdminPass)
	return r
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
