package constants

import "strings"

// SourceKind is the reader family a source file is routed to.
type SourceKind string

const (
	SourceSpreadsheet SourceKind = "SPREADSHEET"
	SourcePDF         SourceKind = "PDF"
)

// AllowedExtensions holds the file extensions picked up when scanning for timetables.
var AllowedExtensions = map[string]SourceKind{
	"xlsx": SourceSpreadsheet,
	"xlsm": SourceSpreadsheet,
	"pdf":  SourcePDF,
}

// UnsupportedExtensions are recognized timetable formats no reader can open.
// Legacy BIFF workbooks need converting to xlsx first.
var UnsupportedExtensions = map[string]struct{}{
	"xls": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// KindForExt returns the reader family for an extension, with or without the dot.
func KindForExt(ext string) (SourceKind, bool) {
	kind, ok := AllowedExtensions[NormalizeExt(ext)]
	return kind, ok
}
