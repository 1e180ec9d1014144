package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_SignVerify(t *testing.T) {
	j := JWT{Secret: []byte("s3cret"), TokenTTL: time.Hour}
	tok, exp, err := j.Sign(Claims{Address: " 0xABC "})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", claims.Address)
	assert.Equal(t, "launchsim", claims.Issuer)

	_, err = JWT{Secret: []byte("other")}.Verify(tok)
	assert.Error(t, err)
}

func TestJWT_RejectsExpiredAndAddressless(t *testing.T) {
	j := JWT{Secret: []byte("s3cret")}
	past := time.Now().Add(-time.Hour)
	tok, _, err := j.Sign(Claims{Address: "0xabc", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(past)}})
	require.NoError(t, err)
	_, err = j.Verify(tok)
	assert.Error(t, err)

	tok, _, err = j.Sign(Claims{})
	require.NoError(t, err)
	_, err = j.Verify(tok)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	j := &JWT{Secret: []byte("s3cret")}
	r := gin.New()
	r.Use(Middleware(j))
	r.GET("/api/v1/me", func(c *gin.Context) {
		claims, ok := ClaimsFromGin(c)
		require.True(t, ok)
		c.String(http.StatusOK, claims.Address)
	})
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, _, err := j.Sign(Claims{Address: "0xabc"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xabc", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCanAct(t *testing.T) {
	assert.True(t, CanAct(context.Background(), "0xabc"))
	ctx := WithClaims(context.Background(), Claims{Address: "0xabc"})
	assert.True(t, CanAct(ctx, "0xABC"))
	assert.False(t, CanAct(ctx, "0xdef"))
}
