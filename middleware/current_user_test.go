package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CurrentUser())
	r.GET("/whoami", func(ctx *gin.Context) {
		id, ok := UserID(ctx)
		if !ok {
			ctx.JSON(500, gin.H{"message": "identity missing"})
			return
		}
		ctx.JSON(200, gin.H{"id": id})
	})
	return r
}

func TestCurrentUserDefault(t *testing.T) {
	r := identityRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestCurrentUserHeader(t *testing.T) {
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-ID", "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestCurrentUserInvalidHeader(t *testing.T) {
	r := identityRouter()

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-ID", raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, "header %q", raw)
	}
}
