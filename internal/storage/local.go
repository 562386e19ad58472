package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Local stores one file per key under BaseDir. Keys are hashed into the
// filename so arbitrary key strings stay filesystem-safe.
type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	b, err := os.ReadFile(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (l *Local) Set(ctx context.Context, key string, value []byte) error {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}

	// Write to a temp file then rename so readers never see a torn write.
	dst := l.path(key)
	tmp, err := os.CreateTemp(l.BaseDir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx

	err := os.Remove(l.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *Local) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(l.BaseDir, hex.EncodeToString(sum[:16])+".json")
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
