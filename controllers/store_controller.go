package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"github.com/gislivinna-utsalapp/utsalapp/pkg/resp"
	"github.com/gislivinna-utsalapp/utsalapp/repository"
	"github.com/gislivinna-utsalapp/utsalapp/services"
	"github.com/gislivinna-utsalapp/utsalapp/utils"
)

type UpdateStoreRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	LogoURL     *string  `json:"logoUrl"`
	Address     *string  `json:"address"`
	GeoLat      *float64 `json:"geoLat"`
	GeoLng      *float64 `json:"geoLng"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
}

type StoreController struct {
	Stores  *repository.StoreRepository
	Service *services.SalePostService
}

func NewStoreController(stores *repository.StoreRepository, svc *services.SalePostService) *StoreController {
	return &StoreController{Stores: stores, Service: svc}
}

// GET /api/v1/stores/:id (public)
func (ctl *StoreController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	store, err := ctl.Stores.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "store not found")
		return
	}
	resp.OK(c, store)
}

// PUT /api/v1/stores/:id (owner or admin)
func (ctl *StoreController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	store, err := ctl.Stores.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "store not found")
		return
	}

	if store.OwnerUserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != entity.RoleAdmin {
		resp.Forbidden(c, "not your store")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.GeoLat != nil {
		updates["geo_lat"] = *req.GeoLat
	}
	if req.GeoLng != nil {
		updates["geo_lng"] = *req.GeoLng
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	updated, err := ctl.Stores.Update(uint(id), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}

// GET /api/v1/stores/:id/posts (public, ?activeOnly=true)
func (ctl *StoreController) Posts(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	posts, err := ctl.Service.Query(services.FilterSpec{
		StoreID:    uint(id),
		ActiveOnly: c.Query("activeOnly") == "true",
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, posts)
}
