package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_CreatePackage_ImageRequiredBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(new(MockCatalogRepository), nil))
	r := gin.New()
	r.POST("/packages", h.CreatePackage)

	req := httptest.NewRequest(http.MethodPost, "/packages",
		strings.NewReader(`{"code":"BT2-X","title":"No pictures"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"At least 1 image is required"}`, w.Body.String())
}
