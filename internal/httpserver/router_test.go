package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agathiya-store/internal/domain"
	accountsvc "agathiya-store/internal/service/account"
	catalogsvc "agathiya-store/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type stubAccountSvc struct {
	sessions map[string]domain.Session
}

func (s *stubAccountSvc) Register(_ context.Context, in accountsvc.RegisterInput) (*domain.User, error) {
	if in.Name == "" {
		return nil, domain.Validationf("full name is required")
	}
	return &domain.User{Email: in.Email, Name: in.Name, Role: domain.RoleUser}, nil
}

func (s *stubAccountSvc) Login(_ context.Context, email, password string) (domain.Session, string, error) {
	if password != "secret" {
		return domain.Session{}, "", accountsvc.ErrInvalidCredentials
	}
	return domain.Session{Email: email, Role: domain.RoleUser, Name: "Asha"}, "issued-token", nil
}

func (s *stubAccountSvc) LookupByToken(_ context.Context, tok string) (domain.Session, error) {
	if session, ok := s.sessions[tok]; ok {
		return session, nil
	}
	return domain.Session{}, accountsvc.ErrInvalidToken
}

func (s *stubAccountSvc) Logout(_ context.Context, _ string) error { return nil }

func (s *stubAccountSvc) SessionTTLSeconds() int { return 3600 }

type stubCatalogSvc struct {
	products []domain.Product
}

func (s *stubCatalogSvc) List(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubCatalogSvc) Add(_ context.Context, in catalogsvc.Input) (*domain.Product, error) {
	return &domain.Product{ID: "p-new", Name: in.Name}, nil
}

func (s *stubCatalogSvc) Update(_ context.Context, id string, in catalogsvc.Input) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: in.Name}, nil
}

func (s *stubCatalogSvc) Delete(_ context.Context, _ string) error { return nil }

func (s *stubCatalogSvc) Describe(_ context.Context, _ string) (string, error) {
	return "A jar of golden mornings.", nil
}

type stubCartSvc struct {
	cart       domain.Cart
	addErr     error
	order      *domain.Order
	checkoutEr error
}

func (s *stubCartSvc) Get(_ context.Context, _ string) (*domain.Cart, error) {
	cart := s.cart
	return &cart, nil
}

func (s *stubCartSvc) AddLine(_ context.Context, _, _ string, _ float64, _ domain.Unit) (*domain.Cart, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	cart := s.cart
	return &cart, nil
}

func (s *stubCartSvc) RemoveLine(_ context.Context, _ string, _ int) (*domain.Cart, error) {
	cart := s.cart
	return &cart, nil
}

func (s *stubCartSvc) Checkout(_ context.Context, _ string, _ domain.Session) (*domain.Order, error) {
	if s.checkoutEr != nil {
		return nil, s.checkoutEr
	}
	return s.order, nil
}

type stubOrderSvc struct {
	orders    []domain.Order
	statusErr error
}

func (s *stubOrderSvc) List(_ context.Context) ([]domain.Order, error) { return s.orders, nil }

func (s *stubOrderSvc) ListByUser(_ context.Context, userName string) ([]domain.Order, error) {
	var own []domain.Order
	for _, o := range s.orders {
		if o.UserName == userName {
			own = append(own, o)
		}
	}
	return own, nil
}

func (s *stubOrderSvc) SetStatus(_ context.Context, _ string, _ domain.OrderStatus) error {
	return s.statusErr
}

func (s *stubOrderSvc) Analytics(_ context.Context) (*domain.Analytics, error) {
	return &domain.Analytics{TotalOrders: len(s.orders), TotalUsers: 1}, nil
}

type testDeps struct {
	accounts *stubAccountSvc
	catalog  *stubCatalogSvc
	cart     *stubCartSvc
	orders   *stubOrderSvc
}

func testRouter(t *testing.T, deps testDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.accounts == nil {
		deps.accounts = &stubAccountSvc{sessions: map[string]domain.Session{}}
	}
	if deps.catalog == nil {
		deps.catalog = &stubCatalogSvc{}
	}
	if deps.cart == nil {
		deps.cart = &stubCartSvc{}
	}
	if deps.orders == nil {
		deps.orders = &stubOrderSvc{}
	}
	router, err := buildRouter(log.New(io.Discard, "", 0), nil, Deps{
		AccountSvc: deps.accounts,
		CatalogSvc: deps.catalog,
		CartSvc:    deps.cart,
		OrderSvc:   deps.orders,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func userToken() map[string]domain.Session {
	return map[string]domain.Session{
		"user-token":  {Email: "asha@example.com", Role: domain.RoleUser, Name: "Asha"},
		"admin-token": {Email: "admin@agathiya.com", Role: domain.RoleAdmin, Name: "Store Admin"},
	}
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}})

	rec := doRequest(router, http.MethodGet, "/cart", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/cart", "bogus", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/cart", "user-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminRequired(t *testing.T) {
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}})

	rec := doRequest(router, http.MethodGet, "/admin/analytics", "user-token", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user on admin route: expected 403, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/admin/analytics", "admin-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestListProductsIsPublic(t *testing.T) {
	catalog := &stubCatalogSvc{products: []domain.Product{{ID: "p-1", Name: "Fresh Spinach Leaves"}}}
	router := testRouter(t, testDeps{catalog: catalog})

	rec := doRequest(router, http.MethodGet, "/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Total != 1 || len(body.Products) != 1 {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	router := testRouter(t, testDeps{})

	rec := doRequest(router, http.MethodPost, "/auth/login", "", `{"email":"asha@example.com","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var body loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Token != "issued-token" || body.ExpiresIn != 3600 {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	rec = doRequest(router, http.MethodPost, "/auth/login", "", `{"email":"asha@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials: expected 401, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodPost, "/auth/login", "", `{"email":"asha@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", rec.Code)
	}
}

func TestRegisterValidationSurfacesMessage(t *testing.T) {
	router := testRouter(t, testDeps{})

	rec := doRequest(router, http.MethodPost, "/auth/register", "", `{"email":"a@b.c","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "full name is required") {
		t.Fatalf("validation message lost: %s", rec.Body.String())
	}
}

func TestAddCartLineValidationError(t *testing.T) {
	cart := &stubCartSvc{addErr: domain.Validationf("minimum quantity is 1000 gm (1 kg)")}
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}, cart: cart})

	rec := doRequest(router, http.MethodPost, "/cart/lines", "user-token", `{"productId":"p-1","quantity":500,"unit":"gm"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "1000 gm") {
		t.Fatalf("validation message lost: %s", rec.Body.String())
	}

	rec = doRequest(router, http.MethodPost, "/cart/lines", "user-token", `{"quantity":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing productId: expected 400, got %d", rec.Code)
	}
}

func TestCheckout(t *testing.T) {
	cart := &stubCartSvc{order: &domain.Order{ID: "AG-AAAAAA", TotalAmount: 450, Status: domain.StatusPending}}
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}, cart: cart})

	rec := doRequest(router, http.MethodPost, "/checkout", "user-token", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if order.ID != "AG-AAAAAA" || order.Status != domain.StatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestCheckoutBelowMinimum(t *testing.T) {
	cart := &stubCartSvc{checkoutEr: domain.Validationf("minimum order value is ₹100, add ₹60 more")}
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}, cart: cart})

	rec := doRequest(router, http.MethodPost, "/checkout", "user-token", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "add ₹60 more") {
		t.Fatalf("shortfall message lost: %s", rec.Body.String())
	}
}

func TestListOrdersScopedByRole(t *testing.T) {
	orders := &stubOrderSvc{orders: []domain.Order{
		{ID: "AG-000002", UserName: "Asha"},
		{ID: "AG-000001", UserName: "Ravi"},
	}}
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}, orders: orders})

	rec := doRequest(router, http.MethodGet, "/orders", "user-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Orders []domain.Order `json:"orders"`
		Total  int            `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Total != 1 || body.Orders[0].UserName != "Asha" {
		t.Fatalf("expected only own orders, got %s", rec.Body.String())
	}

	rec = doRequest(router, http.MethodGet, "/orders", "admin-token", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Total != 2 {
		t.Fatalf("admin should see every order, got %s", rec.Body.String())
	}
}

func TestSetOrderStatusConflict(t *testing.T) {
	orders := &stubOrderSvc{statusErr: domain.ErrStatusFinal}
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}, orders: orders})

	rec := doRequest(router, http.MethodPut, "/admin/orders/AG-DONE01/status", "admin-token", `{"status":"Cancelled"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestSetOrderStatusSuccess(t *testing.T) {
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}})

	rec := doRequest(router, http.MethodPut, "/admin/orders/AG-AAAAAA/status", "admin-token", `{"status":"Delivered"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodPut, "/admin/orders/AG-AAAAAA/status", "admin-token", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing status: expected 400, got %d", rec.Code)
	}
}

func TestMeReturnsSession(t *testing.T) {
	router := testRouter(t, testDeps{accounts: &stubAccountSvc{sessions: userToken()}})

	rec := doRequest(router, http.MethodGet, "/me", "user-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var session domain.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if session.Email != "asha@example.com" || session.Admin() {
		t.Fatalf("unexpected session %+v", session)
	}
}
