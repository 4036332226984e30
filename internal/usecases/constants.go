package usecases

// assetExtensions maps the allowed asset content types to their canonical
// file extensions.
var assetExtensions = map[string]string{
	"application/pdf":      "pdf",
	"application/zip":      "zip",
	"application/epub+zip": "epub",
	"audio/mpeg":           "mp3",
	"video/mp4":            "mp4",
	"image/png":            "png",
	"image/jpeg":           "jpg",
}

// thumbnailExtensions restricts thumbnails to two image types, stricter than
// the general asset allow-list.
var thumbnailExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

const (
	// DefaultListLimit is used when a listing request carries no limit.
	DefaultListLimit = 20
	// MaxListLimit caps offset/limit pagination windows.
	MaxListLimit = 100
)
