package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/configs"
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"github.com/gislivinna-utsalapp/utsalapp/pkg/resp"
	"github.com/gislivinna-utsalapp/utsalapp/repository"
	"github.com/gislivinna-utsalapp/utsalapp/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterStoreRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StoreName string `json:"storeName" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB     *gorm.DB
	Users  *repository.UserRepository
	Stores *repository.StoreRepository
	Cfg    *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		DB:     db,
		Users:  repository.NewUserRepository(db),
		Stores: repository.NewStoreRepository(db),
		Cfg:    cfg,
	}
}

// POST /api/v1/auth/register-store
func (a *AuthController) RegisterStore(c *gin.Context) {
	var req RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := a.Users.FindByEmail(email); err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{Email: email, PasswordHash: string(hashed), Role: entity.RoleStore}
	store := entity.Store{Name: req.StoreName}

	// account and store are one unit
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		store.OwnerUserID = user.ID
		return tx.Create(&store).Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, store.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role, "createdAt": user.CreatedAt},
		"store": store,
		"token": token,
	})
}

// POST /api/v1/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Users.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	// admins and fresh accounts have no store
	var storeID uint
	store, err := a.Stores.FindByOwner(user.ID)
	if err == nil {
		storeID = store.ID
	} else {
		store = nil
	}

	token, err := utils.GenerateToken(user.ID, user.Role, storeID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role, "createdAt": user.CreatedAt},
		"store": store,
	})
}

// GET /api/v1/auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}

	store, err := a.Stores.FindByOwner(user.ID)
	if err != nil {
		store = nil
	}

	resp.OK(c, gin.H{
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role, "createdAt": user.CreatedAt},
		"store": store,
	})
}
