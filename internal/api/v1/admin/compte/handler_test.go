package compte_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	adminCompte "gesbanque-backend/internal/api/v1/admin/compte"
	"gesbanque-backend/internal/api/v1/compte"
	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Client{}, &models.Compte{}, &models.Transaction{})
	err = db.AutoMigrate(&models.User{}, &models.Client{}, &models.Compte{}, &models.Transaction{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	comptes := router.Group("/api/v1/admin/comptes")
	comptes.POST("/:id/bloquer", adminCompte.Block)
	comptes.POST("/:id/debloquer", adminCompte.Unblock)
	return router
}

func seedEpargne(t *testing.T) *models.Compte {
	t.Helper()

	created, err := services.CreateCompte(services.CreateCompteInput{
		Type:         "epargne",
		SoldeInitial: 50000,
		Devise:       "XOF",
		Client: services.ClientInput{
			Titulaire: "Mamadou Diallo",
			Email:     "mamadou.diallo@example.sn",
			Telephone: "+221771234567",
			Adresse:   "Dakar, Sénégal",
		},
	})
	assert.NoError(t, err)
	return created
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBlockCompteEndpoint(t *testing.T) {
	setupTestDB()
	router := setupRouter()
	created := seedEpargne(t)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/bloquer", map[string]interface{}{
		"motif": "Fraude suspectée",
		"duree": 3,
		"unite": "mois",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data compte.CompteResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bloque", resp.Data.StatutBlocage)
	assert.Equal(t, "Fraude suspectée", *resp.Data.MotifBlocage)
	assert.NotNil(t, resp.Data.DateDeblocagePrevue)
}

func TestBlockCompteEndpointValidatesUnit(t *testing.T) {
	setupTestDB()
	router := setupRouter()
	created := seedEpargne(t)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/bloquer", map[string]interface{}{
		"motif": "Fraude suspectée",
		"duree": 3,
		"unite": "heures",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBlockCompteEndpointConflict(t *testing.T) {
	setupTestDB()
	router := setupRouter()
	created := seedEpargne(t)

	body := map[string]interface{}{"motif": "Fraude suspectée", "duree": 1, "unite": "mois"}

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/bloquer", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/bloquer", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnblockCompteEndpoint(t *testing.T) {
	setupTestDB()
	router := setupRouter()
	created := seedEpargne(t)

	_, err := services.BlockCompte(created.ID, "Vérification", 1, "mois")
	assert.NoError(t, err)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/debloquer", map[string]interface{}{
		"motif": "Vérification terminée",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data compte.CompteResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "actif", resp.Data.StatutBlocage)
	assert.Nil(t, resp.Data.MotifBlocage)
}

func TestUnblockCompteEndpointNotBlocked(t *testing.T) {
	setupTestDB()
	router := setupRouter()
	created := seedEpargne(t)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/"+created.ID+"/debloquer", map[string]interface{}{
		"motif": "Rien à faire",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBlockCompteEndpointNotFound(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := performRequest(router, http.MethodPost, "/api/v1/admin/comptes/unknown-id/bloquer", map[string]interface{}{
		"motif": "Fraude suspectée",
		"duree": 1,
		"unite": "mois",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
