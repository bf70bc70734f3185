package persist

import (
	"os"
	"path/filepath"

	"github.com/c360/history/errors"
)

// File binds a snapshot type to a path and a codec. Save and Load keep
// codec failures distinguishable from I/O failures: encoding problems
// come back as invalid, filesystem problems as transient.
type File[T any] struct {
	path  string
	codec Codec
}

// NewFile creates a file wrapper for snapshots of type T at path.
func NewFile[T any](path string, codec Codec) *File[T] {
	return &File[T]{path: path, codec: codec}
}

// Path returns the bound path.
func (f *File[T]) Path() string {
	return f.path
}

// Save encodes v and writes it to the bound path. The write goes through
// a temporary file in the same directory and a rename, so a crash never
// leaves a half-written snapshot at the path.
func (f *File[T]) Save(v *T) error {
	data, err := f.codec.Marshal(v)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return errors.WrapTransient(err, "File", "Save", "temp file creation")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WrapTransient(err, "File", "Save", "snapshot write")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapTransient(err, "File", "Save", "snapshot close")
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapTransient(err, "File", "Save", "snapshot rename")
	}

	return nil
}

// Load reads the bound path and decodes it into a new T.
func (f *File[T]) Load() (*T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.WrapTransient(err, "File", "Load", "snapshot read")
	}

	out := new(T)
	if err := f.codec.Unmarshal(data, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Exists reports whether a snapshot is present at the bound path.
func (f *File[T]) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}
