package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooManyFiles    = errors.New("field accepts a single file")
)

// ImageTypes is the allow-list for photo fields.
var ImageTypes = []string{"image/jpeg", "image/png"}

// FileField declares how one multipart field maps to an output slot:
// which content types it accepts and whether it collects multiple files.
type FileField struct {
	Name  string
	Slot  string
	Types []string
	Multi bool
}

// LocalStore persists uploaded files to a local directory and hands back
// relative URLs under its prefix. Stored names are timestamp-prefixed with
// a random suffix, so concurrent requests never collide.
type LocalStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

func NewLocalStore(dir, urlPrefix string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: urlPrefix,
		maxBytes:  maxBytes,
	}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Intake validates and stores every file matching the declared fields,
// returning slot -> stored URLs. Any failing file aborts the intake and
// removes what this call already stored.
func (s *LocalStore) Intake(r *http.Request, fields []FileField) (map[string][]string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	out := make(map[string][]string)
	if r.MultipartForm == nil {
		return out, nil
	}

	var saved []string
	fail := func(err error) error {
		for _, name := range saved {
			os.Remove(filepath.Join(s.dir, name))
		}
		return err
	}

	for _, field := range fields {
		headers := r.MultipartForm.File[field.Name]
		if !field.Multi && len(headers) > 1 {
			return nil, fail(fmt.Errorf("field %q: %w", field.Name, ErrTooManyFiles))
		}
		for _, header := range headers {
			name, err := s.save(header, field.Types)
			if err != nil {
				return nil, fail(fmt.Errorf("field %q: %w", field.Name, err))
			}
			saved = append(saved, name)
			out[field.Slot] = append(out[field.Slot], path.Join(s.urlPrefix, name))
		}
	}
	return out, nil
}

// Remove deletes a file previously stored by Intake, addressed by the URL
// Intake returned. Unknown or empty URLs are ignored.
func (s *LocalStore) Remove(url string) error {
	if url == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, path.Base(url)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) save(header *multipart.FileHeader, allowed []string) (string, error) {
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrFileTooLarge, header.Size)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if len(allowed) > 0 {
		contentType, err := sniffContentType(src)
		if err != nil {
			return "", err
		}
		if !typeAllowed(contentType, allowed) {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
		}
	}

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(header.Filename)))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// sniffContentType detects the content type from the first bytes of the
// file rather than trusting the client-supplied part header, then rewinds.
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func typeAllowed(contentType string, allowed []string) bool {
	base := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	for _, t := range allowed {
		if base == t {
			return true
		}
	}
	return false
}
