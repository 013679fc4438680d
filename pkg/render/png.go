package render

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/layoutviz/pkg/errors"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// WritePNG encodes img to path, replacing any existing file.
//
// The image is written to a temporary file in the destination directory and
// renamed into place, so path never holds a partial image. Failures are
// reported as IO_ERROR naming path.
func WritePNG(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = EncodePNG(bw, img); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode %s", path)
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
