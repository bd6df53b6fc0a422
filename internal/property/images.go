// srikarboske | 2026
// images.go

package property

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/s225280351srikarboske/project/internal/config"
	"github.com/s225280351srikarboske/project/internal/core"
)

// formField is the multipart field name the listing form submits.
const formField = "images"

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageUploader persists multipart image uploads to local disk and returns
// the public URLs under which the files are served.
type ImageUploader struct {
	dir          string
	publicBase   string
	maxFileBytes int64
	maxFiles     int
}

func NewImageUploader(cfg config.UploadsConfig) (*ImageUploader, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &ImageUploader{
		dir:          cfg.Dir,
		publicBase:   strings.TrimSuffix(cfg.PublicBase, "/"),
		maxFileBytes: cfg.MaxFileBytes,
		maxFiles:     cfg.MaxFiles,
	}, nil
}

// SaveFromRequest reads the "images" field of a multipart form. The whole
// batch is rejected before anything is written when a file is too large, not
// an image, or the file count exceeds the limit.
func (u *ImageUploader) SaveFromRequest(r *http.Request) ([]string, error) {
	maxBody := int64(u.maxFiles)*u.maxFileBytes + 1<<20
	r.Body = http.MaxBytesReader(nil, r.Body, maxBody)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, core.ValidationError("invalid multipart form")
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File[formField]
	if len(files) == 0 {
		return nil, core.ValidationError("no image files provided")
	}
	if len(files) > u.maxFiles {
		return nil, core.ValidationError(fmt.Sprintf(
			"too many files: at most %d images per upload", u.maxFiles))
	}

	for _, fh := range files {
		if fh.Size > u.maxFileBytes {
			return nil, core.ValidationError(fmt.Sprintf(
				"%s exceeds the %dMB size limit",
				fh.Filename, u.maxFileBytes/(1<<20)))
		}
		if _, err := u.detectType(fh); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := u.saveFile(fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u.publicBase+"/"+name)
	}

	return urls, nil
}

// detectType sniffs the leading bytes rather than trusting the client's
// Content-Type header.
func (u *ImageUploader) detectType(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", core.ValidationError(fmt.Sprintf(
			"%s is not a supported image type", fh.Filename))
	}

	return ext, nil
}

func (u *ImageUploader) saveFile(fh *multipart.FileHeader) (string, error) {
	ext, err := u.detectType(fh)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(), slugify(fh.Filename), ext)

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return name, nil
}

// slugify reduces an original filename to a safe lowercase token. The stored
// name carries a millisecond prefix so collisions across uploads are moot.
func slugify(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteByte('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "image"
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}

	return slug
}
