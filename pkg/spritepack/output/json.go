package output

import (
	"encoding/json"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// ToJSON serializes a manifest.
func ToJSON(m models.Manifest, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}

// EntriesToJSON serializes atlas entries on their own.
func EntriesToJSON(entries []models.AtlasEntry, pretty bool) ([]byte, error) {
	if entries == nil {
		entries = []models.AtlasEntry{}
	}
	if pretty {
		return json.MarshalIndent(entries, "", "  ")
	}
	return json.Marshal(entries)
}
