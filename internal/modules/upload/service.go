package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"hireme/internal/domain"
	"hireme/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxFileSize = 10 * 1024 * 1024 // 10 MB
	purgeBatch  = 500
)

// AllowedMimeTypes lists what may be stored as a photo.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service issues upload targets and resolves photo references to URLs.
type Service struct {
	repo       Repository
	store      ObjectStore
	directBase string // URL prefix of PUT /uploads/:ref for stores without presigning
}

func NewService(repo Repository, store ObjectStore, directBase string) *Service {
	return &Service{repo: repo, store: store, directBase: strings.TrimRight(directBase, "/")}
}

// CreateUploadTarget reserves a reference and returns where to upload it.
func (s *Service) CreateUploadTarget(ctx context.Context, callerID int64, contentType string, size int64) (*Target, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	contentType = normalizeMime(contentType)
	if err := checkFile(contentType, size); err != nil {
		return nil, err
	}

	u := &domain.Upload{
		ID:          uuid.New().String(),
		UserID:      callerID,
		ContentType: contentType,
		Size:        size,
	}
	u.StorageKey = storageKey(u.ID, contentType, time.Now())

	target := &Target{Ref: u.ID, Method: http.MethodPut}
	if p, ok := s.store.(Presigner); ok {
		url, headers, err := p.PresignPut(ctx, u.StorageKey, contentType, size)
		if err != nil {
			return nil, fmt.Errorf("presign upload: %w", err)
		}
		target.UploadURL = url
		target.Headers = headers
	} else {
		target.UploadURL = s.directBase + "/" + u.ID
		target.Headers = map[string]string{"Content-Type": contentType}
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return target, nil
}

// PutContent stores the bytes for a reference issued by CreateUploadTarget.
// Used when the store cannot take uploads from clients directly.
func (s *Service) PutContent(ctx context.Context, callerID int64, ref, contentType string, body io.Reader) (*Result, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	u, err := s.repo.GetByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUploadNotFound
	}
	if u.UserID != callerID {
		return nil, ErrNotOwner
	}
	if u.Ready {
		return nil, ErrAlreadyUploaded
	}
	if ct := normalizeMime(contentType); ct != "" && ct != u.ContentType {
		return nil, ErrContentMismatch
	}

	counter := &countingReader{r: io.LimitReader(body, MaxFileSize+1)}
	if err := s.store.Put(ctx, u.StorageKey, u.ContentType, counter, -1); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if counter.n == 0 || counter.n > MaxFileSize {
		if err := s.store.Delete(ctx, u.StorageKey); err != nil {
			logger.FromContext(ctx).Warn("discard rejected upload", zap.String("ref", u.ID), zap.Error(err))
		}
		if counter.n == 0 {
			return nil, ErrEmptyFile
		}
		return nil, ErrFileTooLarge
	}

	if err := s.repo.MarkReady(ctx, u.ID, counter.n); err != nil {
		return nil, err
	}
	url, err := s.store.URL(ctx, u.StorageKey)
	if err != nil {
		return nil, err
	}
	return &Result{Ref: u.ID, URL: url, ContentType: u.ContentType, Size: counter.n}, nil
}

// Upload takes a multipart file in one request.
func (s *Service) Upload(ctx context.Context, callerID int64, fileHeader *multipart.FileHeader) (*Result, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := normalizeMime(http.DetectContentType(buf[:n]))
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	u := &domain.Upload{
		ID:          uuid.New().String(),
		UserID:      callerID,
		ContentType: mimeType,
		Size:        fileHeader.Size,
		Ready:       true,
	}
	u.StorageKey = storageKey(u.ID, mimeType, time.Now())

	if err := s.store.Put(ctx, u.StorageKey, mimeType, file, fileHeader.Size); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	url, err := s.store.URL(ctx, u.StorageKey)
	if err != nil {
		return nil, err
	}
	return &Result{Ref: u.ID, URL: url, ContentType: mimeType, Size: u.Size}, nil
}

// ResolveURL returns a fetchable URL for ref. Unknown references, objects the
// client never uploaded and store failures all resolve to absent.
func (s *Service) ResolveURL(ctx context.Context, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	log := logger.FromContext(ctx)

	u, err := s.repo.GetByID(ctx, ref)
	if err != nil {
		log.Warn("resolve photo: lookup failed", zap.String("ref", ref), zap.Error(err))
		return "", false
	}
	if u == nil {
		return "", false
	}

	if !u.Ready {
		// presigned uploads go straight to the store
		size, found, err := s.store.Stat(ctx, u.StorageKey)
		if err != nil {
			log.Warn("resolve photo: stat failed", zap.String("ref", ref), zap.Error(err))
			return "", false
		}
		if !found {
			return "", false
		}
		if err := s.repo.MarkReady(ctx, u.ID, size); err != nil {
			log.Warn("resolve photo: mark ready failed", zap.String("ref", ref), zap.Error(err))
		}
	}

	url, err := s.store.URL(ctx, u.StorageKey)
	if err != nil {
		log.Warn("resolve photo: url failed", zap.String("ref", ref), zap.Error(err))
		return "", false
	}
	return url, true
}

// PurgeStale drops reservations older than maxAge whose bytes never arrived.
// Objects that did arrive are marked ready instead. Returns the number removed.
func (s *Service) PurgeStale(ctx context.Context, maxAge time.Duration) (int, error) {
	log := logger.FromContext(ctx)
	pending, err := s.repo.ListPendingBefore(ctx, time.Now().Add(-maxAge), purgeBatch)
	if err != nil {
		return 0, fmt.Errorf("list pending uploads: %w", err)
	}

	removed := 0
	for _, u := range pending {
		size, found, err := s.store.Stat(ctx, u.StorageKey)
		if err != nil {
			log.Warn("purge: stat failed", zap.String("ref", u.ID), zap.Error(err))
			continue
		}
		if found {
			if err := s.repo.MarkReady(ctx, u.ID, size); err != nil {
				return removed, fmt.Errorf("mark %s ready: %w", u.ID, err)
			}
			continue
		}
		if err := s.repo.Delete(ctx, u.ID); err != nil {
			return removed, fmt.Errorf("delete upload %s: %w", u.ID, err)
		}
		removed++
	}
	return removed, nil
}

func checkFile(contentType string, size int64) error {
	if !AllowedMimeTypes[contentType] {
		return ErrInvalidMimeType
	}
	if size <= 0 {
		return ErrEmptyFile
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

func normalizeMime(v string) string {
	v = strings.Split(v, ";")[0] // strip charset params
	return strings.ToLower(strings.TrimSpace(v))
}

// storageKey builds photos/YYYY/MM/DD/<ref><ext>.
func storageKey(ref, mimeType string, now time.Time) string {
	return fmt.Sprintf("photos/%d/%02d/%02d/%s%s", now.Year(), now.Month(), now.Day(), ref, mimeToExt(mimeType))
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
