package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/configs"
	"github.com/gislivinna-utsalapp/utsalapp/pkg/resp"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024

var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadController struct {
	Cfg *configs.Config
}

func NewUploadController(cfg *configs.Config) *UploadController {
	return &UploadController{Cfg: cfg}
}

// POST /api/v1/uploads (requires login)
// Pushes to Cloudinary when CLOUDINARY_URL is configured, otherwise stores
// the file under the local uploads dir served by the static route.
func (ctl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "no image provided")
		return
	}
	if file.Size > maxUploadBytes {
		resp.BadRequest(c, "image too large")
		return
	}
	ext, ok := imageExts[file.Header.Get("Content-Type")]
	if !ok {
		resp.BadRequest(c, "unsupported image type")
		return
	}

	if ctl.Cfg.CloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(ctl.Cfg.CloudinaryURL)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		src, err := file.Open()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		defer src.Close()

		result, err := cld.Upload.Upload(context.Background(), src, uploader.UploadParams{})
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"url": result.SecureURL})
		return
	}

	if err := os.MkdirAll(ctl.Cfg.UploadDir, 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}
	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(ctl.Cfg.UploadDir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"url": fmt.Sprintf("/uploads/%s", name)})
}
