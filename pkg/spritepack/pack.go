package spritepack

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/atlas"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/packer"
)

// Result is the outcome of one packing run.
type Result struct {
	// Sheet is the final square sheet.
	Sheet models.Sheet
	// Plan holds the column count and row heights.
	Plan models.LayoutPlan
	// Sprites are the trimmed sprites in input order.
	Sprites []models.TrimmedSprite
	// Placements are the top-down positions on the sheet.
	Placements []models.PlacedSprite
	// Entries are the bottom-up rectangles for importers.
	Entries []models.AtlasEntry
	// Record is the text record handed to importers.
	Record atlas.Record
	// Dropped names the fully transparent images that were left out.
	Dropped []string
	// Warning describes the capacity overflow when Sheet.Overflow is set.
	Warning string
}

// Manifest describes the result for a sheet saved as imagePath.
func (r *Result) Manifest(imagePath string, padding int) models.Manifest {
	return models.Manifest{
		Image:       filepath.Base(imagePath),
		Size:        r.Sheet.Width,
		ColumnCount: r.Plan.ColumnCount,
		Padding:     padding,
		Sprites:     r.Entries,
	}
}

// Pack trims, lays out and composes images into one sheet and computes the
// atlas entries for it. Images keep their input order.
func Pack(images []models.SourceImage, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	log := opts.logger()

	log.Printf("Optimizing Images..")
	sprites := make([]models.TrimmedSprite, 0, len(images))
	var dropped []string
	for i, img := range images {
		log.Printf("Optimizing Images.... %d%%", (i+1)*100/len(images))
		s, ok := packer.Trim(img, opts.Scale)
		if !ok {
			dropped = append(dropped, img.Name)
			continue
		}
		sprites = append(sprites, s)
	}
	if len(sprites) == 0 {
		return nil, ErrNoValidImages
	}

	log.Printf("Creating Sprite Sheet..")
	columns := packer.ColumnCount(sprites, opts.ColumnFudgeDivisor, opts.DefaultColumnCount)
	canvas, placed, plan := packer.Compose(sprites, columns, opts.Padding, opts.CanvasSize())

	var sheet models.Sheet
	if packer.Clipped(placed, opts.CanvasSize()) {
		sheet = packer.Unfitted(canvas)
	} else {
		sheet = packer.FitSheet(canvas, opts.Sizes, opts.Padding)
	}
	var warning string
	if sheet.Overflow {
		ext := packer.Extent(placed, opts.Padding)
		warning = fmt.Sprintf("Warning: sprite sheet content (%dx%d) does not fit in %dx%d",
			ext.X, ext.Y, opts.CanvasSize(), opts.CanvasSize())
		log.Printf("%s", warning)
	} else {
		log.Printf("Sprite Sheet Size: %d", sheet.Width)
	}

	items := make([]atlas.Item, len(sprites))
	for i, s := range sprites {
		items[i] = atlas.Item{Name: s.Name, Width: s.Width, Height: s.Height}
	}
	record := atlas.Record{SheetSize: sheet.Width, ColumnCount: columns, Items: items}

	return &Result{
		Sheet:      sheet,
		Plan:       plan,
		Sprites:    sprites,
		Placements: placed,
		Entries:    atlas.Translate(items, columns, opts.Padding, sheet.Height),
		Record:     record,
		Dropped:    dropped,
		Warning:    warning,
	}, nil
}
