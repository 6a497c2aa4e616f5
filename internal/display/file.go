package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// FileSurface writes every texture it receives to an image file.
type FileSurface struct {
	outputDir string
	prefix    string

	// Path, when set, is used as the exact output file instead of a
	// timestamped name.
	Path string

	// Format is "png" (default) or "bmp".
	Format string

	// Scale enlarges each cell to Scale x Scale pixels using
	// nearest-neighbour sampling. Values below 2 write the texture as is.
	Scale int

	last string
}

// NewFileSurface creates a surface writing timestamped PNG files into
// outputDir.
func NewFileSurface(outputDir, prefix string) *FileSurface {
	return &FileSurface{
		outputDir: outputDir,
		prefix:    prefix,
		Format:    "png",
	}
}

// DrawTexture implements Surface.
func (s *FileSurface) DrawTexture(tex *image.NRGBA) error {
	encode, err := encoder(s.Format)
	if err != nil {
		return err
	}

	filename := s.Path
	if filename == "" {
		filename = s.GenerateFilename()
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encode(file, Upscale(tex, s.Scale)); err != nil {
		return fmt.Errorf("encoding %s: %w", s.ext(), err)
	}

	s.last = filename
	return file.Close()
}

// LastPath returns the file written by the most recent DrawTexture.
func (s *FileSurface) LastPath() string {
	return s.last
}

// GenerateFilename generates an output filename without writing anything.
func (s *FileSurface) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, s.ext())
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}
	return filename
}

func (s *FileSurface) ext() string {
	if s.Format == "" {
		return "png"
	}
	return strings.ToLower(s.Format)
}

func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
}

// Upscale returns tex enlarged by factor with hard cell edges. A factor
// below 2 returns tex unchanged.
func Upscale(tex *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return tex
	}
	b := tex.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), tex, b, xdraw.Src, nil)
	return dst
}
