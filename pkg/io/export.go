package io

import (
	"image"
	"os"
	"path/filepath"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/sink"
)

// ExportPNG encodes img and writes it to path. The file is created only
// once the whole image has been encoded.
func ExportPNG(img image.Image, path string) error {
	data, err := sink.RenderPNG(img)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile replaces the file at path with data. The data is written to a
// temporary file in the same directory and renamed into place, so a
// failed write never leaves a truncated file behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "create %s", path)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	return nil
}
