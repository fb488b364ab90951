package spritepack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// ListImages returns the png files directly inside folder, in natural order
// ("run2.png" before "run10.png"). Subdirectories are not searched.
func ListImages(folder string) ([]string, error) {
	if folder == "" {
		return nil, ErrNoSourceFolder
	}
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceFolder, folder)
	}

	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", folder, err)
	}

	var names []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, ErrNoImages
	}

	sort.Sort(natural.StringSlice(names))

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(folder, name)
	}
	return paths, nil
}

// LoadImage decodes one image. The sprite name is the file name without
// its extension.
func LoadImage(path string) (models.SourceImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return models.SourceImage{}, NewImageError(path, err)
	}
	base := filepath.Base(path)
	return models.SourceImage{
		Name:  strings.TrimSuffix(base, filepath.Ext(base)),
		Path:  path,
		Image: img,
	}, nil
}

// LoadFolder decodes every image ListImages returns. The first unreadable
// image aborts the whole load.
func LoadFolder(folder string) ([]models.SourceImage, error) {
	paths, err := ListImages(folder)
	if err != nil {
		return nil, err
	}

	images := make([]models.SourceImage, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
