package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/pkg/imageproc"
	"github.com/linskybing/scholarship-go/pkg/storage"
)

type UploadService struct {
	uploader storage.Uploader
}

func NewUploadService(uploader storage.Uploader) *UploadService {
	return &UploadService{uploader: uploader}
}

func maxUploadBytes() int64 {
	mb := config.ImageMaxUploadMB
	if mb <= 0 {
		mb = 5
	}
	return int64(mb) << 20
}

// UploadImage re-encodes data as WebP and stores it, returning the public URL.
func (s *UploadService) UploadImage(ctx context.Context, data []byte) (string, error) {
	if s.uploader == nil {
		return "", ErrStorageUnavailable
	}
	if int64(len(data)) > maxUploadBytes() {
		return "", ErrImageTooLarge
	}

	out, err := imageproc.ToWebP(data, imageproc.Options{
		MaxWidth: config.ImageMaxWidth,
		Quality:  config.ImageWebPQuality,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	key := fmt.Sprintf("scholarships/%s/%s.webp", timeNow().UTC().Format("20060102"), uuid.NewString())
	url, err := s.uploader.Put(ctx, key, "image/webp", out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return url, nil
}
