package backup

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ArchiveFile is a single named payload destined for a ZIP bundle.
type ArchiveFile struct {
	Name string
	Data []byte
}

// BuildArchive bundles the payloads into one flat ZIP blob. Payload bytes are
// stored untouched, so CSV members keep their byte-order mark and remain
// independently spreadsheet-importable after extraction.
func BuildArchive(files []ArchiveFile) ([]byte, error) {
	const op = "backup.BuildArchive"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%s create %s: %w", op, f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("%s write %s: %w", op, f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%s close: %w", op, err)
	}

	return buf.Bytes(), nil
}
