package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/pkg/validation"
)

func newErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/boom", handler)
	return router
}

func doGet(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerValidation(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(&validation.Error{Details: map[string][]string{"userId": {"must be a valid UUID"}}})
	})
	w := doGet(router)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	var body struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Fatalf("error message: got %q", body.Error)
	}
	if body.Details["userId"][0] != "must be a valid UUID" {
		t.Fatalf("details: %v", body.Details)
	}
}

func TestErrorHandlerStatusCarryingError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("Conversation not found"))
	})
	w := doGet(router)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Conversation not found" {
		t.Fatalf("body: %v", body)
	}
}

func TestErrorHandlerMasksInternalDetail(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("pq: connection refused on 10.0.0.3"))
	})
	w := doGet(router)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("internal detail leaked: %v", body)
	}
}

func TestErrorHandlerLeavesWrittenResponsesAlone(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	w := doGet(router)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
}
