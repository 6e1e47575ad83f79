package extract

import "fmt"

// UnsupportedFormatError is returned for file extensions the extractor does
// not recognize. Callers should surface it as a user-facing 4xx, not a crash.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q (expected .pdf, .doc, .docx, or .txt)", e.Extension)
}

// EmptyExtractionError is returned when a document yielded no text at all,
// e.g. a scanned PDF with no text layer.
type EmptyExtractionError struct {
	Extension string
}

func (e *EmptyExtractionError) Error() string {
	return fmt.Sprintf("no text could be extracted from %s document", e.Extension)
}

// ReadError wraps a failure from the underlying document library.
type ReadError struct {
	Extension string
	Cause     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s document: %v", e.Extension, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
