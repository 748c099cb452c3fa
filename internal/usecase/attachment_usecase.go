package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidAttachmentID   = errors.New("invalid attachment id")
	ErrInvalidAttachment     = errors.New("attachment file is required")
	ErrInvalidAttachmentURL  = errors.New("attachment url does not point to a stored object")
	ErrAttachmentNotFound    = errors.New("attachment not found")
	ErrAttachmentURLMismatch = errors.New("attachment url does not match the record")
	ErrStorageNotConfigured  = errors.New("file storage not configured")
)

const (
	attachmentKeyPrefix   = "devices"
	attachmentTypeGeneral = "general"
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type UploadAttachmentInput struct {
	DeviceID    string
	FileName    string
	ContentType string
	Type        string
	Body        io.Reader
	Uploader    entities.User
}

// IAttachmentUseCase stores device files and keeps their records and audit
// entries in step with the object store.

type IAttachmentUseCase interface {
	Upload(ctx context.Context, in UploadAttachmentInput) (entities.Attachment, error)
	Delete(ctx context.Context, attachmentID, fileURL string, actor entities.User) error
}

type AttachmentUseCase struct {
	repo    interfaces.IAttachmentRepository
	devices interfaces.IDeviceRepository
	storage interfaces.IFileStorage
	audit   *AuditTrail
	logger  *zap.Logger
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(repo interfaces.IAttachmentRepository, devices interfaces.IDeviceRepository, storage interfaces.IFileStorage, audit *AuditTrail, logger *zap.Logger) *AttachmentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentUseCase{repo: repo, devices: devices, storage: storage, audit: audit, logger: logger}
}

func (u *AttachmentUseCase) Upload(ctx context.Context, in UploadAttachmentInput) (entities.Attachment, error) {
	deviceID := strings.TrimSpace(in.DeviceID)
	if deviceID == "" {
		return entities.Attachment{}, ErrInvalidDeviceID
	}
	name := strings.TrimSpace(path.Base(strings.ReplaceAll(in.FileName, "\\", "/")))
	if in.Body == nil || name == "" || name == "." || name == "/" {
		return entities.Attachment{}, ErrInvalidAttachment
	}
	if u.storage == nil {
		return entities.Attachment{}, ErrStorageNotConfigured
	}

	device, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Attachment{}, err
	}
	if device.ID == "" {
		return entities.Attachment{}, ErrDeviceNotFound
	}
	if !CanManageAttachments(in.Uploader, device) {
		return entities.Attachment{}, ErrForbidden
	}

	attType := strings.ToLower(strings.TrimSpace(in.Type))
	if attType == "" {
		attType = attachmentTypeGeneral
	}

	key := attachmentKey(deviceID, name)
	fileURL, err := u.storage.Put(ctx, key, in.ContentType, in.Body)
	if err != nil {
		u.logger.Error("[attachment][usecase] upload failed", zap.String("device_id", deviceID), zap.String("key", key), zap.Error(err))
		return entities.Attachment{}, err
	}

	a := entities.Attachment{
		ID:         uuid.NewString(),
		DeviceID:   deviceID,
		FileName:   name,
		FileURL:    fileURL,
		Type:       attType,
		UploadedBy: in.Uploader.ID,
		UploadedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.logger.Error("[attachment][usecase] record create failed", zap.String("device_id", deviceID), zap.Error(err))
		if delErr := u.storage.Delete(ctx, key); delErr != nil {
			u.logger.Warn("[attachment][usecase] orphan object left behind", zap.String("key", key), zap.Error(delErr))
		}
		return entities.Attachment{}, err
	}

	u.audit.Record(ctx, deviceID, entities.AuditActionAttachmentUploaded, in.Uploader.ID, map[string]any{
		"fileName": name,
		"fileType": attType,
	})
	return created, nil
}

// Delete removes the stored object behind the attachment record, then the
// record itself. fileURL must match the stored record; the device is taken
// from the record, never from the caller.
func (u *AttachmentUseCase) Delete(ctx context.Context, attachmentID, fileURL string, actor entities.User) error {
	attachmentID = strings.TrimSpace(attachmentID)
	if attachmentID == "" {
		return ErrInvalidAttachmentID
	}
	if u.storage == nil {
		return ErrStorageNotConfigured
	}

	record, err := u.repo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if record.ID == "" {
		return ErrAttachmentNotFound
	}
	if strings.TrimSpace(fileURL) != record.FileURL {
		u.logger.Warn("[attachment][usecase] file url does not match record",
			zap.String("attachment_id", attachmentID), zap.String("device_id", record.DeviceID), zap.String("actor_id", actor.ID))
		return ErrAttachmentURLMismatch
	}
	key, ok := u.storage.KeyFromURL(record.FileURL)
	if !ok {
		return ErrInvalidAttachmentURL
	}
	if keyDevice, ok := deviceIDFromKey(key); !ok || keyDevice != record.DeviceID {
		return ErrInvalidAttachmentURL
	}

	device, err := u.devices.GetByID(ctx, record.DeviceID)
	if err != nil {
		return err
	}
	if device.ID == "" {
		return ErrDeviceNotFound
	}
	if !CanManageAttachments(actor, device) {
		return ErrForbidden
	}

	if err := u.storage.Delete(ctx, key); err != nil {
		u.logger.Error("[attachment][usecase] object delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := u.repo.Delete(ctx, record.ID); err != nil {
		u.logger.Error("[attachment][usecase] record delete failed", zap.String("attachment_id", record.ID), zap.Error(err))
		return err
	}

	fileName := record.FileName
	if fileName == "" {
		fileName = displayNameFromKey(key)
	}
	u.audit.Record(ctx, record.DeviceID, entities.AuditActionAttachmentDeleted, actor.ID, map[string]any{
		"fileName":     fileName,
		"attachmentId": record.ID,
	})
	return nil
}

// attachmentKey is devices/<device>/<uuid>-<name>.
func attachmentKey(deviceID, fileName string) string {
	safe := strings.Trim(unsafeFileNameChars.ReplaceAllString(fileName, "_"), "_")
	if safe == "" {
		safe = "file"
	}
	return fmt.Sprintf("%s/%s/%s-%s", attachmentKeyPrefix, deviceID, uuid.NewString(), safe)
}

func deviceIDFromKey(key string) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(key, "/"), "/")
	if len(parts) != 3 || parts[0] != attachmentKeyPrefix || parts[1] == "" || parts[2] == "" {
		return "", false
	}
	return parts[1], true
}

// displayNameFromKey strips the uuid prefix added by attachmentKey.
func displayNameFromKey(key string) string {
	base := path.Base(key)
	const uuidLen = 36
	if len(base) > uuidLen+1 && base[uuidLen] == '-' {
		if _, err := uuid.Parse(base[:uuidLen]); err == nil {
			return base[uuidLen+1:]
		}
	}
	return base
}
