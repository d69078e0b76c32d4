// Package romfile loads boot and cartridge images from disk, unpacking
// single-file archives.
package romfile

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned for an archive with no file inside.
var ErrEmptyArchive = errors.New("archive contains no files")

// Load reads filename and, depending on its extension, decompresses it.
// .gz, .zip and .7z are unpacked (the first file of an archive is used),
// anything else is returned as is.
func Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	out, err := Decode(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", filename, err)
	}
	return out, nil
}

// Decode unpacks data according to the file extension ext (".gz", ".zip",
// ".7z", case insensitive). Unknown extensions return data unchanged.
func Decode(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.ReadCloser
		err     error
	)

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		decoder, err = openZip(data)
	case ".7z":
		decoder, err = open7z(data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return io.ReadAll(decoder)
}

func openZip(data []byte) (io.ReadCloser, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			return f.Open()
		}
	}
	return nil, ErrEmptyArchive
}

func open7z(data []byte) (io.ReadCloser, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			return f.Open()
		}
	}
	return nil, ErrEmptyArchive
}
