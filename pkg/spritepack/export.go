package spritepack

import (
	"fmt"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/output"
)

// Export packs every png in folder and saves the sheet to savePath.
//
// Nothing is written unless packing succeeds. A file already at savePath is
// removed just before the new sheet is written, and a sheet that fails to
// write is removed, so a failed run leaves no file behind.
func Export(folder, savePath string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	images, err := LoadFolder(folder)
	if err != nil {
		return nil, err
	}

	res, err := Pack(images, opts)
	if err != nil {
		return nil, err
	}

	log.Printf("Saving Sprite Sheet..")
	if err := output.WriteSheet(res.Sheet.Image, savePath); err != nil {
		return nil, fmt.Errorf("failed to save sprite sheet: %w", err)
	}

	log.Printf("Creating Atlas..")
	return res, nil
}
