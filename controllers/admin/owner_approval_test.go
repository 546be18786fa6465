package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAdmin(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Store{}))

	require.NoError(t, db.Create(&[]models.Owner{
		{ID: "u1", Email: "pending@loja.com"},
		{ID: "u2", Email: "ok@loja.com", Approved: true},
		{ID: "u3", Email: "withstore@loja.com"},
	}).Error)
	require.NoError(t, db.Create(&models.Store{OwnerID: "u3", Slug: "loja-3", Name: "Loja 3"}).Error)

	r := gin.New()
	r.GET("/admin/owners", GetAllOwners(db))
	r.GET("/admin/owners/pending", ListPendingOwners(db))
	r.POST("/admin/owners/approve", ApproveOwner(db))
	r.POST("/admin/owners/reject", RejectOwner(db))
	return r, db
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPendingOwners(t *testing.T) {
	r, _ := setupAdmin(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/owners/pending", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var owners []models.Owner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owners))
	require.Len(t, owners, 2)
	for _, o := range owners {
		assert.False(t, o.Approved)
	}
}

func TestApproveOwner(t *testing.T) {
	r, db := setupAdmin(t)

	w := post(r, "/admin/owners/approve", gin.H{"email": "pending@loja.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var owner models.Owner
	require.NoError(t, db.First(&owner, "id = ?", "u1").Error)
	assert.True(t, owner.Approved)

	assert.Equal(t, http.StatusNotFound, post(r, "/admin/owners/approve", gin.H{"email": "ghost@loja.com"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, "/admin/owners/approve", gin.H{}).Code)
}

func TestRejectOwner(t *testing.T) {
	r, db := setupAdmin(t)

	require.Equal(t, http.StatusOK, post(r, "/admin/owners/reject", gin.H{"email": "pending@loja.com"}).Code)
	var count int64
	db.Model(&models.Owner{}).Where("id = ?", "u1").Count(&count)
	assert.Zero(t, count)

	assert.Equal(t, http.StatusConflict, post(r, "/admin/owners/reject", gin.H{"email": "withstore@loja.com"}).Code)
	assert.Equal(t, http.StatusNotFound, post(r, "/admin/owners/reject", gin.H{"email": "ghost@loja.com"}).Code)
}
