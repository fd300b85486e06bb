package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	itm "github.com/wollendesigns/storefront/internal/item"
	ord "github.com/wollendesigns/storefront/internal/order"
	usr "github.com/wollendesigns/storefront/internal/user"
)

//
// ---------- STUBS & FAKES ----------
//

// stubOrders implements the ord.Repository interface in memory.
type stubOrders struct {
	mu     sync.Mutex
	orders map[string]*ord.Order
	items  *stubItems
	seq    int
}

func newStubOrders(items *stubItems) *stubOrders {
	return &stubOrders{orders: make(map[string]*ord.Order), items: items}
}

func (s *stubOrders) Create(ctx context.Context, o *ord.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.BeforeSave()
	s.seq++
	o.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
	o.UpdatedAt = o.CreatedAt
	cp := *o
	s.orders[o.ID] = &cp
	return nil
}

func (s *stubOrders) CreateWithStock(ctx context.Context, o *ord.Order, itemID string, qty int) error {
	if _, err := s.items.DecrementStock(ctx, itemID, qty); err != nil {
		return err
	}
	return s.Create(ctx, o)
}

func (s *stubOrders) GetByID(ctx context.Context, id string) (*ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ord.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrders) ListAll(ctx context.Context) ([]ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ord.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubOrders) LatestByEmail(ctx context.Context, email string) (*ord.Order, error) {
	all, _ := s.ListAll(ctx)
	for _, o := range all {
		if o.UserEmail == email {
			cp := o
			return &cp, nil
		}
	}
	return nil, ord.ErrNotFound
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id string, status ord.Status) (ord.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return "", ord.ErrNotFound
	}
	prev := o.Status
	o.Status = status
	return prev, nil
}

func (s *stubOrders) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

// stubItems implements itm.Repository keeping stock in memory.
type stubItems struct {
	mu         sync.Mutex
	items      map[string]*itm.Item
	failUpdate error
}

func newStubItems() *stubItems { return &stubItems{items: make(map[string]*itm.Item)} }

func (s *stubItems) Create(ctx context.Context, it *itm.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *it
	s.items[it.ID] = &cp
	return nil
}

func (s *stubItems) GetByID(ctx context.Context, id string) (*itm.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, itm.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *stubItems) List(ctx context.Context) ([]itm.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]itm.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out, nil
}

func (s *stubItems) Update(ctx context.Context, it *itm.Item, updatePrice, updateStock bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate != nil {
		return s.failUpdate
	}
	cur, ok := s.items[it.ID]
	if !ok {
		return itm.ErrNotFound
	}
	if it.Name != "" {
		cur.Name = it.Name
	}
	if it.Description != "" {
		cur.Description = it.Description
	}
	if updatePrice {
		cur.Price = it.Price
	}
	if updateStock {
		cur.Stock = it.Stock
	}
	return nil
}

func (s *stubItems) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubItems) DecrementStock(ctx context.Context, id string, qty int) (*itm.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, itm.ErrNotFound
	}
	if it.Stock < qty {
		return nil, itm.ErrInsufficientStock
	}
	it.Stock -= qty
	cp := *it
	return &cp, nil
}

func (s *stubItems) IncrementStock(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return itm.ErrNotFound
	}
	it.Stock += qty
	return nil
}

// recNotifier records sends instead of talking to a relay.
type recNotifier struct {
	mu   sync.Mutex
	sent []string // "to|subject|body"
	fail error
}

func (n *recNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.sent = append(n.sent, to+"|"+subject+"|"+body)
	return nil
}

// stubUsers implements usr.Repository in memory.
type stubUsers struct {
	byID    map[string]*usr.User
	byEmail map[string]*usr.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{byID: make(map[string]*usr.User), byEmail: make(map[string]*usr.User)}
}

func (s *stubUsers) Create(ctx context.Context, u *usr.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return usr.ErrAlreadyExist
	}
	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUsers) GetByID(ctx context.Context, id string) (*usr.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, usr.ErrNotFound
	}
	return u, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*usr.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, usr.ErrNotFound
	}
	return u, nil
}

func newOrderService(policy ord.StockPolicy) (*ord.Service, *stubOrders, *stubItems, *recNotifier) {
	items := newStubItems()
	repo := newStubOrders(items)
	n := &recNotifier{}
	return ord.NewService(repo, items, n, policy), repo, items, n
}

func orderBody(itemID string, qty int) string {
	return fmt.Sprintf(`{
		"userName":"Asha","userEmail":"a@x.com","userPhone":"9990001111",
		"address":"12 Rd","pincode":"560001","design":"Shawl-Blue",
		"itemId":%q,"quantity":%d,"pricePerUnit":"500","totalAmount":"1000"
	}`, itemID, qty)
}

//
// ---------- TESTS ----------
//

func TestCreateOrder_HappyPath(t *testing.T) {
	t.Parallel()

	svc, repo, items, n := newOrderService(ord.StockAtomic)
	prodID := uuid.NewString()
	_ = items.Create(context.Background(), &itm.Item{ID: prodID, Name: "Shawl-Blue", Stock: 5})

	r := gin.New()
	r.POST("/orders", createOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(orderBody(prodID, 2)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("persisted orders=%d, expected 1", len(all))
	}
	if got := all[0].TotalAmount.String(); got != "1000" {
		t.Fatalf("totalAmount=%s, expected 1000", got)
	}
	it, _ := items.GetByID(context.Background(), prodID)
	if it.Stock != 3 {
		t.Fatalf("stock=%d, expected 3", it.Stock)
	}
	if len(n.sent) != 1 || !strings.HasPrefix(n.sent[0], "a@x.com|") {
		t.Fatalf("expected one confirmation email to a@x.com, got %v", n.sent)
	}
}

func TestCreateOrder_MissingField(t *testing.T) {
	t.Parallel()

	svc, repo, _, n := newOrderService(ord.StockAtomic)
	r := gin.New()
	r.POST("/orders", createOrderHandler(svc))

	body := `{"userName":"Asha","userEmail":"a@x.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
	all, _ := repo.ListAll(context.Background())
	if len(all) != 0 || len(n.sent) != 0 {
		t.Fatalf("nothing may be persisted or sent on validation failure")
	}
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	t.Parallel()

	svc, repo, items, _ := newOrderService(ord.StockAtomic)
	prodID := uuid.NewString()
	_ = items.Create(context.Background(), &itm.Item{ID: prodID, Name: "Shawl-Blue", Stock: 1})

	r := gin.New()
	r.POST("/orders", createOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(orderBody(prodID, 2)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s (expected 409)", w.Code, w.Body.String())
	}
	all, _ := repo.ListAll(context.Background())
	if len(all) != 0 {
		t.Fatalf("order must not persist when stock is insufficient")
	}
	it, _ := items.GetByID(context.Background(), prodID)
	if it.Stock != 1 {
		t.Fatalf("stock=%d, expected 1 (untouched)", it.Stock)
	}
}

func TestCreateOrder_NotifyFailureStillCreated(t *testing.T) {
	t.Parallel()

	svc, repo, _, n := newOrderService(ord.StockAtomic)
	n.fail = fmt.Errorf("relay down")

	r := gin.New()
	r.POST("/orders", createOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(orderBody("", 2)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s (expected 201 despite notify failure)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "could not be sent") {
		t.Fatalf("response must carry the notification warning, body=%s", w.Body.String())
	}
	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("order must persist despite notify failure")
	}
}

func TestUpdateOrderStatus_ShippedNotifies(t *testing.T) {
	t.Parallel()

	svc, _, _, n := newOrderService(ord.StockAtomic)
	o, err := svc.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.PUT("/orders/:id", updateOrderStatusHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/"+o.ID, bytes.NewBufferString(`{"status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (expected 200)", w.Code, w.Body.String())
	}
	if len(n.sent) != 2 || !strings.Contains(n.sent[1], "Shipped") {
		t.Fatalf("expected a status email containing Shipped, got %v", n.sent)
	}
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newOrderService(ord.StockAtomic)
	o, err := svc.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.PUT("/orders/:id", updateOrderStatusHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/"+o.ID, bytes.NewBufferString(`{"status":"wtf"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, n := newOrderService(ord.StockAtomic)
	r := gin.New()
	r.PUT("/orders/:id", updateOrderStatusHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/"+uuid.NewString(), bytes.NewBufferString(`{"status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (expected 404)", w.Code, w.Body.String())
	}
	if len(n.sent) != 0 {
		t.Fatalf("no email may be sent for an unknown order")
	}
}

func TestDeleteOrder_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newOrderService(ord.StockAtomic)
	o, err := svc.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.DELETE("/orders/:id", deleteOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/orders/"+o.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete status=%d (expected 200)", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/orders/"+o.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status=%d (expected 404)", w.Code)
	}
}

func TestTrackOrder_ByEmailReturnsLatest(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newOrderService(ord.StockAtomic)
	if _, err := svc.CreateOrder(context.Background(), validCreateReq()); err != nil {
		t.Fatal(err)
	}
	second := validCreateReq()
	second.Design = "Scarf-Red"
	want, err := svc.CreateOrder(context.Background(), second)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/orders/track", trackOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/track?email=a@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (expected 200)", w.Code, w.Body.String())
	}
	var resp struct {
		Order ord.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Order.ID != want.ID {
		t.Fatalf("tracked order=%s, expected latest %s", resp.Order.ID, want.ID)
	}
}

func TestTrackOrder_SelectorRequired(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newOrderService(ord.StockAtomic)
	r := gin.New()
	r.GET("/orders/track", trackOrderHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/track", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400 without selectors)", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/orders/track?email=nobody@x.com", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404 for unknown email)", w.Code)
	}
}

func TestListOrders_NewestFirst(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newOrderService(ord.StockAtomic)
	var last string
	for i := 0; i < 3; i++ {
		req := validCreateReq()
		req.Design = fmt.Sprintf("Design-%d", i)
		o, err := svc.CreateOrder(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		last = o.ID
	}

	r := gin.New()
	r.GET("/orders", listOrdersHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var arr []ord.Order
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(arr) != 3 {
		t.Fatalf("len=%d, expected 3", len(arr))
	}
	if arr[0].ID != last {
		t.Fatalf("first listed=%s, expected newest %s", arr[0].ID, last)
	}
}

func TestAuthMiddleware_GatesAdminRoutes(t *testing.T) {
	t.Parallel()

	repo := newStubUsers()
	users := usr.NewService(repo, usr.NewSessions(time.Hour))
	ctx := context.Background()

	if _, err := users.Register(ctx, "Shopper", "shopper@x.com", "pw"); err != nil {
		t.Fatal(err)
	}
	admin, err := users.Register(ctx, "Owner", "owner@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	repo.byID[admin.ID].IsAdmin = true
	repo.byEmail[admin.Email].IsAdmin = true

	_, shopperTok, err := users.Login(ctx, "shopper@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	_, adminTok, err := users.Login(ctx, "owner@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/admin", authRequired(users), adminOnly(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"unknown token", "bogus", http.StatusUnauthorized},
		{"non-admin", shopperTok, http.StatusForbidden},
		{"admin", adminTok, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.token != "" {
			req.Header.Set("Authorization", "Bearer "+tc.token)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d, expected %d", tc.name, w.Code, tc.want)
		}
	}
}

func TestAddItem_RequiresName(t *testing.T) {
	t.Parallel()

	items := newStubItems()
	r := gin.New()
	r.POST("/items", addItemHandler(items, t.TempDir()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("description=nice&price=10&stock=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
}

func TestAddAndListItems(t *testing.T) {
	t.Parallel()

	items := newStubItems()
	r := gin.New()
	r.POST("/items", addItemHandler(items, t.TempDir()))
	r.GET("/items", listItemsHandler(items))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=Blue+Shawl&price=500&stock=4"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s (expected 201)", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/items", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var arr []itm.Item
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(arr) != 1 || arr[0].Name != "Blue Shawl" || arr[0].Stock != 4 {
		t.Fatalf("unexpected items: %+v", arr)
	}
}

func TestUpdateItem_OmittedStockPreserved(t *testing.T) {
	t.Parallel()

	items := newStubItems()
	id := uuid.NewString()
	_ = items.Create(context.Background(), &itm.Item{ID: id, Name: "Blue Shawl", Stock: 7})

	r := gin.New()
	r.PUT("/items/:id", updateItemHandler(items, t.TempDir()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/items/"+id, strings.NewReader("name=Bluer+Shawl"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (expected 200)", w.Code, w.Body.String())
	}
	it, _ := items.GetByID(context.Background(), id)
	if it.Name != "Bluer Shawl" {
		t.Fatalf("name=%q, expected rename to apply", it.Name)
	}
	if it.Stock != 7 {
		t.Fatalf("stock=%d, expected 7 untouched when the field is absent", it.Stock)
	}
}

func TestUpdateItem_ExplicitZeroStockApplies(t *testing.T) {
	t.Parallel()

	items := newStubItems()
	id := uuid.NewString()
	_ = items.Create(context.Background(), &itm.Item{ID: id, Name: "Blue Shawl", Stock: 7})

	r := gin.New()
	r.PUT("/items/:id", updateItemHandler(items, t.TempDir()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/items/"+id, strings.NewReader("stock=0"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (expected 200)", w.Code, w.Body.String())
	}
	it, _ := items.GetByID(context.Background(), id)
	if it.Stock != 0 {
		t.Fatalf("stock=%d, expected explicit 0 to be written", it.Stock)
	}
}

func TestUpdateItem_StoreFailureIsServerError(t *testing.T) {
	t.Parallel()

	items := newStubItems()
	id := uuid.NewString()
	_ = items.Create(context.Background(), &itm.Item{ID: id, Name: "Blue Shawl", Stock: 7})
	items.failUpdate = fmt.Errorf("connection reset")

	r := gin.New()
	r.PUT("/items/:id", updateItemHandler(items, t.TempDir()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/items/"+id, strings.NewReader("stock=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s (expected 500 on a store failure)", w.Code, w.Body.String())
	}
}

func validCreateReq() ord.CreateOrderRequest {
	return ord.CreateOrderRequest{
		UserName:  "Asha",
		UserEmail: "a@x.com",
		UserPhone: "9990001111",
		Address:   "12 Rd",
		Pincode:   "560001",
		Design:    "Shawl-Blue",
		Quantity:  2, PricePerUnit: "500", TotalAmount: "1000",
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
