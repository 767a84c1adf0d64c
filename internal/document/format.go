// Package document converts resume files into plain text, dispatching on the
// detected file format. Anything that is not PDF or Word is decoded as UTF-8
// text, so an unknown extension never blocks the pipeline.
package document

import (
	"path/filepath"
	"strings"
)

// Format identifies how a resume file's bytes should be interpreted.
type Format int

const (
	FormatPlainText Format = iota
	FormatPDF
	FormatDOCX
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "text"
	}
}

// DetectFormat classifies a file by its extension, case-insensitively.
// Unrecognized extensions (including none at all) fall back to plain text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatDOCX
	default:
		return FormatPlainText
	}
}
