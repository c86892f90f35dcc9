// Package util holds the file handling shared by the commands.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenLog opens path for appending, creating its directory as needed.
// An empty path discards.
func OpenLog(path string, mode os.FileMode) (file io.WriteCloser, err error) {

	if path == "" {
		file = nopCloser{io.Discard}
		return
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create log dir for %s", path)
		return
	}

	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	err = errors.Wrapf(err, "failed to open log %s", path)
	return
}

// LoadYaml decodes the yaml (or json) document at path into obj.
// An empty document leaves obj untouched.
func LoadYaml(obj any, path string) (err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(obj)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// SampleConfig writes data to path unless a file is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (wrote bool, err error) {

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if errors.Is(err, os.ErrExist) {
		err = nil
		return // already have a cfg
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", path)
		return
	}
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	wrote = true
	return
}
