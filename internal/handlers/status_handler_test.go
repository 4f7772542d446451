package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/service"
)

func newStatusRouter() *gin.Engine {
	h := NewStatusHandler(service.NewStatusService(&memStatusStore{}), zap.NewNop())
	r := gin.New()
	api := r.Group("/api")
	api.GET("/", Root)
	api.POST("/status", h.CreateStatusCheck)
	api.GET("/status", h.ListStatusChecks)
	return r
}

func TestRoot(t *testing.T) {
	rec := doRequest(newStatusRouter(), http.MethodGet, "/api/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}

func TestStatusChecks(t *testing.T) {
	r := newStatusRouter()

	rec := doRequest(r, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(r, http.MethodPost, "/api/status", `{"client_name":"probe"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "probe", created.ClientName)
	assert.False(t, created.Timestamp.IsZero())

	rec = doRequest(r, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = doRequest(r, http.MethodPost, "/api/status", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
