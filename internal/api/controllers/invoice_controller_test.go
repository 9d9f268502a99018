package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"invoicemanager/internal/infra"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/middleware"
	"invoicemanager/pkg/utils"
)

func setupInvoiceRouter(t *testing.T) (*gin.Engine, uuid.UUID, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	controller := NewInvoiceController(services.NewInvoiceService(repositories.NewInvoiceRepository(db)))

	r := gin.New()
	group := r.Group("/invoices", middleware.JWTAuthMiddleware())
	group.POST("", controller.CreateInvoice)
	group.GET("", controller.ListInvoices)
	group.GET("/:invoiceId", controller.GetInvoice)

	userID := uuid.New()
	token, err := utils.CreateToken(userID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return r, userID, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func invoicePayload(number string) map[string]interface{} {
	return map[string]interface{}{
		"client_name":    "Client Co",
		"client_email":   "client@example.com",
		"invoice_number": number,
		"amount":         "1250.00",
		"issue_date":     "2024-01-01",
		"due_date":       "2024-02-01",
	}
}

func TestInvoiceEndpointsRequireAuth(t *testing.T) {
	r, _, _ := setupInvoiceRouter(t)

	w := doJSON(t, r, http.MethodGet, "/invoices", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/invoices", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestInvoiceCreateAndFetchRoundtrip(t *testing.T) {
	r, _, token := setupInvoiceRouter(t)

	w := doJSON(t, r, http.MethodPost, "/invoices", token, invoicePayload("INV-001"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	var created utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != "success" {
		t.Fatalf("unexpected envelope: %+v", created)
	}
	data := created.Data.(map[string]interface{})
	id := data["id"].(string)
	if data["status"] != "pending" {
		t.Fatalf("expected pending default, got %v", data["status"])
	}

	w = doJSON(t, r, http.MethodGet, "/invoices/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/invoices", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}
}

func TestInvoiceDuplicateNumberConflict(t *testing.T) {
	r, _, token := setupInvoiceRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/invoices", token, invoicePayload("INV-001")); w.Code != http.StatusOK {
		t.Fatalf("create: %d", w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/invoices", token, invoicePayload("INV-001"))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
	}
}

func TestInvoiceOwnershipReturnsNotFound(t *testing.T) {
	r, _, token := setupInvoiceRouter(t)

	w := doJSON(t, r, http.MethodPost, "/invoices", token, invoicePayload("INV-001"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d", w.Code)
	}
	var created utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := created.Data.(map[string]interface{})["id"].(string)

	otherToken, err := utils.CreateToken(uuid.New())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	w = doJSON(t, r, http.MethodGet, "/invoices/"+id, otherToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign invoice, got %d", w.Code)
	}
}
