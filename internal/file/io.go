// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package file

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

type IO struct {
	storage *storage.Client
	bucket  string
}

func NewIO(storage *storage.Client, bucket string) *IO {
	return &IO{
		storage: storage,
		bucket:  bucket,
	}
}

func (fio *IO) WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	wc := fio.storage.Bucket(fio.bucket).Object(path).NewWriter(ctx)
	defer func() {
		_ = wc.Close()
	}()
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("file: writing file: %w", err)
	}
	return fio.URL(path), nil
}

// ReadFile returns the contents of the object at path, or nil with no
// error when the object does not exist.
func (fio *IO) ReadFile(ctx context.Context, path string) ([]byte, error) {
	rc, err := fio.storage.Bucket(fio.bucket).Object(path).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("file: opening file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("file: reading file: %w", err)
	}
	return data, nil
}

// DeleteFile removes the object at path. Deleting a missing object is
// not an error.
func (fio *IO) DeleteFile(ctx context.Context, path string) error {
	if err := fio.storage.Bucket(fio.bucket).Object(path).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("file: deleting file: %w", err)
	}
	return nil
}

// URL returns the public URL of the object at path.
func (fio *IO) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", fio.bucket, path)
}
