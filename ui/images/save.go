package images

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// fileTimeLayout renders as "2006-01-02 15-04-05"; colons are avoided for
// filesystems that reject them.
const fileTimeLayout = "2006-01-02 15-04-05"

// FileName returns the default name for a screenshot taken at t.
func FileName(t time.Time, format string) string {
	return "Screenshot from " + t.Format(fileTimeLayout) + "." + extension(format)
}

func extension(format string) string {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return "jpg"
	}
	return "png"
}

// SaveTimestamped writes img into dir under FileName(t, format). An existing
// file is never overwritten; a numeric suffix is added instead. It returns the
// written path and its size in bytes.
func SaveTimestamped(img image.Image, dir, format string, t time.Time) (string, int64, error) {
	if img == nil {
		return "", 0, errors.New("images: nothing to save")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("images: create %s: %w", dir, err)
	}
	name := FileName(t, format)
	path := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	for i := 2; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), i, ext))
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(92)); err != nil {
		return "", 0, fmt.Errorf("images: save %s: %w", path, err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return path, 0, nil
	}
	return path, fi.Size(), nil
}
