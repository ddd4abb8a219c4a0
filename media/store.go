// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package media stores incident attachments on behalf of the report form.
// The dashboard only keeps the returned models.MediaRef.
package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/danielhkuo/disaster-verify/ident"
	"github.com/danielhkuo/disaster-verify/models"
)

var (
	ErrNotFound    = errors.New("media not found")
	ErrUnsupported = errors.New("only image and video attachments are accepted")
	ErrEmpty       = errors.New("attachment is empty")
)

// Upload is an attachment as received from the client
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type Store interface {
	Save(ctx context.Context, u Upload) (models.MediaRef, error)
	Load(ctx context.Context, id string) (models.MediaRef, []byte, error)
}

// SQLStore keeps attachments in the media table
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, u Upload) (models.MediaRef, error) {
	if len(u.Data) == 0 {
		return models.MediaRef{}, ErrEmpty
	}

	contentType := DetectContentType(u)
	if !Accepted(contentType) {
		return models.MediaRef{}, fmt.Errorf("%w: %s", ErrUnsupported, contentType)
	}

	ref := models.MediaRef{
		ID:          ident.NewMediaID(),
		Name:        cleanName(u.Name),
		ContentType: contentType,
		Size:        int64(len(u.Data)),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO media (id, name, content_type, size, digest, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ref.ID, ref.Name, ref.ContentType, ref.Size, ident.ContentDigest(u.Data), u.Data, time.Now())
	if err != nil {
		return models.MediaRef{}, fmt.Errorf("failed to insert media: %w", err)
	}

	return ref, nil
}

func (s *SQLStore) Load(ctx context.Context, id string) (models.MediaRef, []byte, error) {
	var ref models.MediaRef
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, content_type, size, content FROM media WHERE id = $1
	`, id).Scan(&ref.ID, &ref.Name, &ref.ContentType, &ref.Size, &data)

	if errors.Is(err, sql.ErrNoRows) {
		return models.MediaRef{}, nil, ErrNotFound
	}
	if err != nil {
		return models.MediaRef{}, nil, fmt.Errorf("failed to query media: %w", err)
	}
	return ref, data, nil
}

// DetectContentType prefers the declared type and sniffs the bytes otherwise
func DetectContentType(u Upload) string {
	ct := strings.TrimSpace(u.ContentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(u.Data)
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// Accepted mirrors the form's image/*,video/* file filter
func Accepted(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}

func cleanName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "attachment"
	}
	return name
}
