package models

// Rect is a rectangle in the consumer's coordinate space
// (origin bottom-left, Y up).
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// AtlasEntry describes where one sprite lives in the packed sheet.
type AtlasEntry struct {
	// Name is the sprite identifier.
	Name string `json:"name"`
	// Rect is the sprite rectangle, bottom-up.
	Rect Rect `json:"rect"`
}

// Manifest is the serializable description of a packed sheet.
type Manifest struct {
	// Image is the sheet file name (no directory).
	Image string `json:"image"`
	// Size is the sheet width and height in pixels.
	Size int `json:"size"`
	// ColumnCount is the number of sprites per row.
	ColumnCount int `json:"column_count"`
	// Padding is the gap between sprites in pixels.
	Padding int `json:"padding"`
	// Sprites lists entries in input order.
	Sprites []AtlasEntry `json:"sprites"`
}
