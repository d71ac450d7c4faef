package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"arena/internal/middleware"
	"arena/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadScreenshot stores a match result screenshot and returns its URL.
func (h *UploadHandler) UploadScreenshot(c *gin.Context) {
	h.upload(c, "Arena/screenshots/")
}

// UploadKYCDocument stores a KYC document scan and returns its URL.
func (h *UploadHandler) UploadKYCDocument(c *gin.Context) {
	h.upload(c, "Arena/kyc/")
}

func (h *UploadHandler) upload(c *gin.Context, folderPrefix string) {
	userID := middleware.GetUserID(c)
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	folder := folderPrefix + strconv.FormatUint(uint64(userID), 10)
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
