package handlers

import (
	"errors"
	"net/http"

	"repair_desk/internal/usecase"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxAttachmentBytes = 25 << 20

// AttachmentHandler uploads and removes device files.
type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
	logger  *zap.Logger
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase, logger *zap.Logger) *AttachmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentHandler{usecase: uc, logger: logger}
}

// Upload godoc
// @Summary  Upload a device attachment
// @Tags     attachments
// @Accept   multipart/form-data
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Param    file formData file true "File"
// @Param    type formData string false "Attachment type (invoice, photo, ...)"
// @Success  201 {object} entities.Attachment
// @Router   /devices/{device_id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	deviceID := c.Param("device_id")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAttachmentBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, mapAttachmentError(usecase.ErrInvalidAttachment))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, mapAttachmentError(err))
		return
	}
	defer f.Close()

	created, err := h.usecase.Upload(c.Request.Context(), usecase.UploadAttachmentInput{
		DeviceID:    deviceID,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Type:        c.PostForm("type"),
		Body:        f,
		Uploader:    ActorFrom(c),
	})
	if err != nil {
		h.logger.Info("[attachment][handler] upload failed", zap.String("device_id", deviceID), zap.Error(err))
		writeError(c, mapAttachmentError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete godoc
// @Summary  Delete a device attachment
// @Tags     attachments
// @Param    attachment_id path string true "Attachment ID"
// @Param    file_url query string true "Stored file URL"
// @Success  204
// @Router   /attachments/{attachment_id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	attachmentID := c.Param("attachment_id")
	if err := h.usecase.Delete(c.Request.Context(), attachmentID, c.Query("file_url"), ActorFrom(c)); err != nil {
		h.logger.Info("[attachment][handler] delete failed", zap.String("attachment_id", attachmentID), zap.Error(err))
		writeError(c, mapAttachmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAttachmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttachmentID):
		return pkg.NewDomainErrorSimple("INVALID_ATTACHMENT_ID", "Invalid attachment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAttachment):
		return pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Choose a file to upload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAttachmentURL):
		return pkg.NewDomainErrorSimple("INVALID_ATTACHMENT_URL", "Attachment url is not a stored file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttachmentURLMismatch):
		return pkg.NewDomainErrorSimple("ATTACHMENT_URL_MISMATCH", "File url does not belong to this attachment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "File storage is not available", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
