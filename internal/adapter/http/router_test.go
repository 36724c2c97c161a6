package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/finledger/internal/adapter/http/handler"
	"github.com/iho/finledger/internal/adapter/repository/memory"
	"github.com/iho/finledger/internal/usecase"
)

type seqIDGen struct {
	next int
}

func (g *seqIDGen) Generate() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

type plainHasher struct{}

func (plainHasher) Hash(raw string) (string, error) {
	return "hashed:" + raw, nil
}

func newTestRouter() http.Handler {
	userRepo := memory.NewUserRepository()
	txRepo := memory.NewTransactionRepository()
	idGen := &seqIDGen{}

	userUC := usecase.NewUserUseCase(userRepo, plainHasher{}, idGen)
	txUC := usecase.NewTransactionUseCase(txRepo, userRepo)

	return NewRouter(RouterConfig{
		UserHandler:        handler.NewUserHandler(userUC),
		TransactionHandler: handler.NewTransactionHandler(txUC, idGen),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}

func TestRouterFullFlow(t *testing.T) {
	router := newTestRouter()

	// Register
	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"name":     "Alice Smith",
		"email":    "alice@example.com",
		"password": "Str0ng!pass",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}

	// Duplicate email conflicts
	rec = doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"name":     "Bob Jones",
		"email":    "alice@example.com",
		"password": "0ther!Pass",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}

	// Record income and expense
	rec = doJSON(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"user_id":     user.ID,
		"kind":        "income",
		"amount":      1000.00,
		"description": "salary",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode transaction: %v", err)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"user_id":     user.ID,
		"kind":        "expense",
		"amount":      300.50,
		"description": "groceries",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense: expected 201, got %d", rec.Code)
	}

	// List with aggregates
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/"+user.ID+"/transactions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var list struct {
		Transactions []struct {
			FormattedAmount string `json:"formatted_amount"`
		} `json:"transactions"`
		TotalIncome   string `json:"total_income"`
		TotalExpenses string `json:"total_expenses"`
		Balance       string `json:"balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list.Transactions))
	}
	if list.Balance != "699.5" && list.Balance != "699.50" {
		t.Fatalf("expected balance 699.50, got %s", list.Balance)
	}
	if list.TotalIncome != "1000" && list.TotalIncome != "1000.00" {
		t.Fatalf("expected total income 1000.00, got %s", list.TotalIncome)
	}
	if list.Transactions[0].FormattedAmount != "+R$ 1000.00" {
		t.Fatalf("unexpected formatted amount %q", list.Transactions[0].FormattedAmount)
	}

	// Kind filter
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/"+user.ID+"/transactions?kind=expense", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list: expected 200, got %d", rec.Code)
	}

	// Delete own transaction
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/users/"+user.ID+"/transactions/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// Deleting again reports not found
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/users/"+user.ID+"/transactions/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: expected 404, got %d", rec.Code)
	}
}

func TestRouterValidationErrors(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"name":     "Alice Smith",
		"email":    "not-an-email",
		"password": "Str0ng!pass",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad email: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"user_id":     "ghost",
		"kind":        "income",
		"amount":      10,
		"description": "nothing",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user: expected 404, got %d", rec.Code)
	}
}
