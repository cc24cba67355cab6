package constants

import "strings"

// MaxUploadBytes is the largest accepted upload (50 MB). Files above this are
// rejected before any parsing is attempted.
const MaxUploadBytes = 50 << 20

// AllowedExtensions holds the accepted upload extensions for catalogs and
// marketplace templates.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
	"xlsm": {},
}

// OutputFormats holds the allowed output formats for generated files.
var OutputFormats = []string{"csv", "xlsx"}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// IsAllowedExt checks if a (normalized or raw) extension is accepted.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// IsOutputFormat checks if s is a valid output format.
func IsOutputFormat(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range OutputFormats {
		if s == f {
			return true
		}
	}
	return false
}
