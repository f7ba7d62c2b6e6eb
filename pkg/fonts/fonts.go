// Package fonts provides the font faces used on score sheets.
//
// Two fonts ship with the binary through golang.org/x/image/font/gofont:
// Go Regular for the metadata header and Go Mono for bar numbers. A
// custom metadata font can be loaded from a TrueType/OpenType file or
// collection; when none is configured the embedded font is used. A bare
// file name such as "NotoSans-Regular.ttf" is looked up in the user and
// system font directories.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/scoresheet/pkg/errors"
)

// Sizes in points at 72 DPI, so one point is one pixel.
const (
	DefaultMetaSize      = 16.0
	DefaultBarNumberSize = 14.0
)

var (
	regular, mono         *opentype.Font
	regularErr, monoErr   error
	regularOnce, monoOnce sync.Once
)

// Regular returns the embedded Go Regular font, parsed once.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Mono returns the embedded Go Mono font, parsed once.
func Mono() (*opentype.Font, error) {
	monoOnce.Do(func() {
		mono, monoErr = opentype.Parse(gomono.TTF)
	})
	return mono, monoErr
}

// Load reads a font file. For collections (.ttc, .otc) the first font is
// used.
func Load(path string) (*opentype.Font, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Resolve returns the file behind name. Paths are returned as given; a
// bare file name that does not exist in the working directory is searched
// for in the font directories.
func Resolve(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", name)
	}
	return path, nil
}

// ReadFile returns the raw bytes of the font file named by name, see
// [Resolve].
func ReadFile(name string) ([]byte, error) {
	path, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read font %s", path)
	}
	return data, nil
}

// Parse decodes font data. name selects collection handling by its
// extension and labels errors.
func Parse(name string, data []byte) (*opentype.Font, error) {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".ttc") || strings.HasSuffix(lower, ".otc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse font collection %s", name)
		}
		if coll.NumFonts() == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "font collection %s is empty", name)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read font 0 of %s", name)
		}
		return f, nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse font %s", name)
	}
	return f, nil
}

// Face returns a face of f at size points.
func Face(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create font face")
	}
	return face, nil
}

// Faces is the pair of faces a sheet is drawn with.
type Faces struct {
	Meta      font.Face
	BarNumber font.Face
}

// Close releases both faces.
func (f Faces) Close() error {
	var first error
	for _, face := range []font.Face{f.Meta, f.BarNumber} {
		if face == nil {
			continue
		}
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewFaces builds the sheet faces. metaPath selects a custom metadata
// font; empty means the embedded Go Regular. metaSize <= 0 means
// [DefaultMetaSize].
func NewFaces(metaPath string, metaSize float64) (Faces, error) {
	if metaSize <= 0 {
		metaSize = DefaultMetaSize
	}

	var metaFont *opentype.Font
	var err error
	if metaPath != "" {
		metaFont, err = Load(metaPath)
	} else {
		metaFont, err = Regular()
	}
	if err != nil {
		return Faces{}, err
	}

	meta, err := Face(metaFont, metaSize)
	if err != nil {
		return Faces{}, err
	}

	monoFont, err := Mono()
	if err != nil {
		return Faces{}, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded mono font")
	}
	bar, err := Face(monoFont, DefaultBarNumberSize)
	if err != nil {
		return Faces{}, err
	}
	return Faces{Meta: meta, BarNumber: bar}, nil
}
