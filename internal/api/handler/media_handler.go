package handler

import (
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ilia-Pringless/YaTube/internal/pkg/consts"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/minio"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/util"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload accepts an image, verifies it actually decodes, and stores it
// in the object store. The returned key goes into the post payload.
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	img, err := imaging.Decode(reader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := "posts/" + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c, "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	bounds := img.Bounds()
	res := map[string]interface{}{
		"image":    fileKey,
		"url":      minio.GetPublicURL(fileKey),
		"mime":     contentType,
		"width":    bounds.Dx(),
		"height":   bounds.Dy(),
		"size":     file.Size,
		"original": file.Filename,
	}

	log.InfoContext(c, "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, res)
}
