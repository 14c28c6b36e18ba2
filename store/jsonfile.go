package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/sessionlog/internal/osutil"
)

// JSONFile keeps the log in a single pretty-printed JSON document.
type JSONFile struct {
	path string
}

// NewJSONFile returns a backend for the JSON document at path. The file is
// created on the first save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) Path() string {
	return f.path
}

func (f *JSONFile) Load() (Log, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Log{}, nil
	}

	if err != nil {
		return nil, errReadLog.Fmt(f.path).Wrap(err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return Log{}, nil
	}

	var l Log

	err = json.Unmarshal(b, &l)
	if err != nil {
		return nil, ErrCorruptStore.Fmt(f.path).Wrap(err)
	}

	if l == nil {
		l = Log{}
	}

	return l, nil
}

// Save writes the log to a temporary file in the same directory and renames
// it over the previous version, so an interrupted save leaves the old
// document intact.
func (f *JSONFile) Save(l Log) (err error) {
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	b = append(b, '\n')

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(b)
	if err != nil {
		return err
	}

	err = tmp.Sync()
	if err != nil {
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}

func (f *JSONFile) Close() error {
	return nil
}
