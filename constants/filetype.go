package constants

import "strings"

// FileType is the declared content kind of an uploaded report.
// It is decided once at upload time from the client's media type and
// never re-sniffed from the bytes.
type FileType string

const (
	PDF   FileType = "pdf"
	Image FileType = "image"
	Other FileType = "other"
)

// MapMIMEToFileType classifies an upload's declared Content-Type.
func MapMIMEToFileType(mimeType string) FileType {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.Contains(mt, "image"):
		return Image
	case strings.Contains(mt, "pdf"):
		return PDF
	default:
		return Other
	}
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ExtForFileType returns a storage-key extension for a declared kind,
// preferring the original extension when it is plausible.
func ExtForFileType(ft FileType, originalExt string) string {
	ext := NormalizeExt(originalExt)
	switch ft {
	case PDF:
		return "pdf"
	case Image:
		switch ext {
		case "jpg", "jpeg", "png", "webp", "gif":
			return ext
		}
		return "png"
	default:
		if ext != "" {
			return ext
		}
		return "bin"
	}
}
