package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"github.com/gislivinna-utsalapp/utsalapp/pkg/resp"
	"github.com/gislivinna-utsalapp/utsalapp/repository"
	"github.com/gislivinna-utsalapp/utsalapp/services"
	"github.com/gislivinna-utsalapp/utsalapp/utils"
)

type ListPostsQuery struct {
	Category    string   `form:"category"`
	Q           string   `form:"q"`
	ActiveOnly  bool     `form:"activeOnly"`
	MinPrice    *float64 `form:"minPrice"`
	MaxPrice    *float64 `form:"maxPrice"`
	MinDiscount *int     `form:"minDiscount"`
	Sort        string   `form:"sort"`
	Page        int      `form:"page"`
	PageSize    int      `form:"pageSize"`
}

type SalePostController struct {
	Service *services.SalePostService
	Stores  *repository.StoreRepository
}

func NewSalePostController(svc *services.SalePostService, stores *repository.StoreRepository) *SalePostController {
	return &SalePostController{Service: svc, Stores: stores}
}

// GET /api/v1/posts (public)
func (ctl *SalePostController) List(c *gin.Context) {
	var q ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	posts, err := ctl.Service.Query(services.FilterSpec{
		Category:    q.Category,
		Search:      q.Q,
		ActiveOnly:  q.ActiveOnly,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinDiscount: q.MinDiscount,
		SortBy:      q.Sort,
		Page:        q.Page,
		PageSize:    q.PageSize,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, posts)
}

// GET /api/v1/posts/:id (public)
func (ctl *SalePostController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	post, err := ctl.Service.DetailByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "post not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, post)
}

// POST /api/v1/posts (store/admin)
func (ctl *SalePostController) Create(c *gin.Context) {
	var req struct {
		services.CreateSalePostInput
		StoreID uint `json:"storeId"` // admins only; stores always post to their own
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	storeID := utils.CurrentStoreID(c)
	if storeID == 0 {
		if utils.CurrentRole(c) == entity.RoleAdmin && req.StoreID != 0 {
			storeID = req.StoreID
		} else if store, err := ctl.Stores.FindByOwner(utils.CurrentUserID(c)); err == nil {
			storeID = store.ID
		} else {
			resp.NotFound(c, "store not found")
			return
		}
	}

	post, err := ctl.Service.Create(storeID, req.CreateSalePostInput)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, post)
}

// PUT /api/v1/posts/:id (owner/admin)
func (ctl *SalePostController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if !ctl.authorize(c, uint(id)) {
		return
	}

	var req services.UpdateSalePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	post, err := ctl.Service.Update(uint(id), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, post)
}

// DELETE /api/v1/posts/:id (owner/admin)
func (ctl *SalePostController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if !ctl.authorize(c, uint(id)) {
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /api/v1/posts/:id/view (public, rate-limited upstream)
func (ctl *SalePostController) View(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.RecordView(uint(id), utils.HashIP(c.ClientIP())); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"recorded": true})
}

// authorize loads the post's store and rejects callers who neither own it nor
// hold the admin role. Runs before any mutation so rejections have no effect.
func (ctl *SalePostController) authorize(c *gin.Context, postID uint) bool {
	post, err := ctl.Service.Posts.FindByID(postID)
	if err != nil {
		resp.NotFound(c, "post not found")
		return false
	}
	if utils.CurrentRole(c) == entity.RoleAdmin {
		return true
	}
	store, err := ctl.Stores.FindByID(post.StoreID)
	if err != nil {
		resp.Forbidden(c, "not your post")
		return false
	}
	if store.OwnerUserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "not your post")
		return false
	}
	return true
}

func writeServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "post not found")
	default:
		resp.ServerError(c, err)
	}
}
