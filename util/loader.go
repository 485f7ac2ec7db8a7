package util

import (
	"bufio"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nvr-ai/picturelab/images"
)

const (
	// JPEGQuality is the quality used when saving JPEG files.
	JPEGQuality = 95
	// WebPQuality is the quality used when saving lossy WebP files.
	WebPQuality = 90
)

// Codec loads and saves pictures on the local file system. The zero value
// is ready to use.
type Codec struct{}

// LoadPicture implements collage.Loader.
func (Codec) LoadPicture(path string) (*images.Picture, error) {
	return LoadPicture(path)
}

// SavePicture implements collage.Saver.
func (Codec) SavePicture(p *images.Picture, path string) error {
	return SavePicture(p, path)
}

// LoadPicture decodes the image file at path into a picture named after the
// file's base name.
//
// Arguments:
// - path: Path to a .jpg, .jpeg, .png, .gif, .bmp, .tif, .tiff or .webp file.
//
// Returns:
// - The decoded picture.
// - error if the extension is unsupported or the file cannot be decoded.
func LoadPicture(path string) (*images.Picture, error) {
	format, err := images.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open picture")
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	p := images.NewPictureFromGrid(filepath.Base(path), images.FromImage(img))
	images.Logger().Info("loaded picture", "path", path, "height", p.Height(), "width", p.Width())
	return p, nil
}

// SavePicture encodes p to path, choosing the encoder from the extension.
func SavePicture(p *images.Picture, path string) (err error) {
	format, err := images.FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return errors.Wrap(err, "create picture file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close picture file")
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, p.ToImage(), format); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush picture file")
	}

	images.Logger().Info("saved picture", "path", path, "height", p.Height(), "width", p.Width())
	return nil
}

func decode(r io.Reader, format images.ImageFormat) (image.Image, error) {
	switch format {
	case images.FormatJPEG:
		return jpeg.Decode(r)
	case images.FormatPNG:
		return png.Decode(r)
	case images.FormatGIF:
		return gif.Decode(r)
	case images.FormatBMP:
		return bmp.Decode(r)
	case images.FormatTIFF:
		return tiff.Decode(r)
	case images.FormatWebP:
		return webp.Decode(r)
	default:
		return nil, errors.Wrapf(images.ErrUnsupportedFormat, "%q", format)
	}
}

func encode(w io.Writer, img image.Image, format images.ImageFormat) error {
	switch format {
	case images.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case images.FormatPNG:
		return png.Encode(w, img)
	case images.FormatGIF:
		return gif.Encode(w, img, nil)
	case images.FormatBMP:
		return bmp.Encode(w, img)
	case images.FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case images.FormatWebP:
		return webp.Encode(w, img, &webp.Options{Quality: WebPQuality})
	default:
		return errors.Wrapf(images.ErrUnsupportedFormat, "%q", format)
	}
}

// LoadDirectoryPictures reads every image file directly inside dir.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - The decoded pictures, sorted by file name. Subdirectories and files with
// other extensions are skipped.
// - error if the directory cannot be read or any image fails to decode.
func LoadDirectoryPictures(dir string) ([]*images.Picture, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read picture directory")
	}

	var names []string
	for _, file := range files {
		if file.IsDir() || !images.IsImagePath(file.Name()) {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	pictures := make([]*images.Picture, 0, len(names))
	for _, name := range names {
		p, err := LoadPicture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		pictures = append(pictures, p)
	}
	return pictures, nil
}
