package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/configs"
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var routerDBSeq int64

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes%d?mode=memory&cache=shared", atomic.AddInt64(&routerDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Store{},
		&entity.SalePost{}, &entity.Image{},
		&entity.ViewEvent{}, &entity.Favorite{},
	))

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerStore(t *testing.T, r *gin.Engine, email, name string) (token string, storeID uint) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register-store", "", gin.H{
		"email":     email,
		"password":  "store123",
		"storeName": name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		Data struct {
			Token string `json:"token"`
			Store struct {
				ID uint `json:"ID"`
			} `json:"store"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Token)
	return out.Data.Token, out.Data.Store.ID
}

func postBody(title string) gin.H {
	now := time.Now()
	return gin.H{
		"title":         title,
		"category":      "fatnad",
		"priceOriginal": 10000,
		"priceSale":     6000,
		"startsAt":      now.Add(-time.Hour).Format(time.RFC3339),
		"endsAt":        now.Add(time.Hour).Format(time.RFC3339),
		"images":        []gin.H{{"url": "/mynd.jpg", "alt": "mynd"}},
	}
}

func TestRegisterLoginAndPostLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	token, _ := registerStore(t, r, "budin@example.is", "Búðin")

	// duplicate email rejected
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register-store", "", gin.H{
		"email": "budin@example.is", "password": "store123", "storeName": "Búðin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login with the same credentials works
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "budin@example.is", "password": "store123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// wrong password is unauthorized
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "budin@example.is", "password": "rangt",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// create a post
	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", token, postBody("Sumarútsala"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID              uint `json:"ID"`
			DiscountPercent int  `json:"discountPercent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 40, created.Data.DiscountPercent)

	// visible in the public listing
	w = doJSON(t, r, http.MethodGet, "/api/v1/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []struct {
			ID    uint `json:"ID"`
			Store struct {
				Name string `json:"name"`
			} `json:"store"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Búðin", list.Data[0].Store.Name)

	// record a view, then the detail reflects it
	viewPath := fmt.Sprintf("/api/v1/posts/%d/view", created.Data.ID)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, viewPath, "", nil).Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data struct {
			ViewCount int64 `json:"viewCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, int64(1), detail.Data.ViewCount)

	// delete, then the detail is gone
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutationsNeedAuthAndOwnership(t *testing.T) {
	r, _ := newTestRouter(t)

	ownerToken, _ := registerStore(t, r, "eigandi@example.is", "Eigandi")
	otherToken, _ := registerStore(t, r, "annar@example.is", "Annar")

	// anonymous create is rejected
	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", "", postBody("Nafnlaust"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", ownerToken, postBody("Mitt tilboð"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// another store cannot edit or delete it, and nothing changes
	path := fmt.Sprintf("/api/v1/posts/%d", created.Data.ID)
	w = doJSON(t, r, http.MethodPut, path, otherToken, gin.H{"title": "Stolið"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Mitt tilboð", detail.Data.Title)

	// invalid price ordering comes back as a field error
	bad := postBody("Rangt verð")
	bad["priceSale"] = 12000
	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", ownerToken, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "priceSale")
}

func TestStorePostsEndpointFiltersByStore(t *testing.T) {
	r, _ := newTestRouter(t)

	firstToken, firstStore := registerStore(t, r, "fyrsta@example.is", "Fyrsta")
	secondToken, _ := registerStore(t, r, "onnur@example.is", "Önnur")

	require.Equal(t, http.StatusCreated,
		doJSON(t, r, http.MethodPost, "/api/v1/posts", firstToken, postBody("Hjá fyrstu")).Code)
	require.Equal(t, http.StatusCreated,
		doJSON(t, r, http.MethodPost, "/api/v1/posts", secondToken, postBody("Hjá annarri")).Code)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/stores/%d/posts", firstStore), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Hjá fyrstu", list.Data[0].Title)
}
