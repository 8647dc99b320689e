package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/mocks"
	"github.com/tastebase/backend/internal/router"
	"github.com/tastebase/backend/internal/service"
	"github.com/tastebase/backend/internal/testdb"
)

// setupStack wires the real router and recipe service against a
// containerized MongoDB. Only the media host is mocked.
func setupStack(t *testing.T) *gin.Engine {
	t.Helper()
	td := testdb.SetupTestDB(t)

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	recipeService := service.NewRecipeService(td.DB)
	return router.SetupRouter(cfg, recipeService, new(mocks.MockMediaService))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var l []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	return l
}

func TestRecipeLifecycle(t *testing.T) {
	r := setupStack(t)

	// Create as u1
	w := doJSON(t, r, "POST", "/api/recipes", map[string]interface{}{
		"userId":       "u1",
		"name":         "Soup",
		"ingredients":  []string{"water", "salt"},
		"instructions": "boil",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	recipeID, _ := decodeMap(t, w)["recipeId"].(string)
	require.NotEmpty(t, recipeID)

	// Listed for its owner, optional fields defaulted
	w = doJSON(t, r, "GET", "/api/recipes/user/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Soup", list[0]["name"])
	assert.Equal(t, "", list[0]["prepTime"])
	assert.Equal(t, recipeID, list[0]["id"])

	// Not listed for anyone else
	w = doJSON(t, r, "GET", "/api/recipes/user/u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	// A non-owner cannot update it
	w = doJSON(t, r, "PUT", "/api/recipes/"+recipeID, map[string]interface{}{
		"userId": "u2",
		"name":   "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "GET", "/api/recipes/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Soup", list[0]["name"], "rejected update must not change the recipe")

	// The owner can
	w = doJSON(t, r, "PUT", "/api/recipes/"+recipeID, map[string]interface{}{
		"userId":   "u1",
		"name":     "Better Soup",
		"prepTime": "5 min",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/recipes/user/u1", nil)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Better Soup", list[0]["name"])
	assert.Equal(t, "5 min", list[0]["prepTime"])

	// Malformed identifiers are rejected before any lookup
	w = doJSON(t, r, "DELETE", "/api/recipes/not-a-valid-id", map[string]interface{}{"userId": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A non-owner cannot delete it
	w = doJSON(t, r, "DELETE", "/api/recipes/"+recipeID, map[string]interface{}{"userId": "u2"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owner can, exactly once
	w = doJSON(t, r, "DELETE", "/api/recipes/"+recipeID, map[string]interface{}{"userId": "u1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "DELETE", "/api/recipes/"+recipeID, map[string]interface{}{"userId": "u1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/api/recipes/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String(), "empty listing serializes as []")
}

func TestCreateRecipeValidation(t *testing.T) {
	r := setupStack(t)

	w := doJSON(t, r, "POST", "/api/recipes", map[string]interface{}{
		"userId":      "u1",
		"name":        "No Instructions",
		"ingredients": []string{"air"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was inserted
	w = doJSON(t, r, "GET", "/api/recipes/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestOperationalEndpoints(t *testing.T) {
	r := setupStack(t)

	w := doJSON(t, r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tastebase API is running", w.Body.String())

	w = doJSON(t, r, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tastebase_http_requests_total")
}
