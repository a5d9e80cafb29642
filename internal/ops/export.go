package ops

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/errors"
)

// BrandExportInput contains parameters for the BrandExport operation.
type BrandExportInput struct {
	BrandID string
	Path    string // optional, default: <base>/exports/<slug>-<timestamp>.jsonl
}

// BrandExportOutput contains the result of the BrandExport operation.
type BrandExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"` // content pieces written
	ExportedAt int64  `json:"exported_at"`
}

// exportHeader is the first line of a JSONL export file.
type exportHeader struct {
	BrandloomExport bool   `json:"_brandloom_export"`
	SchemaVersion   string `json:"schema_version"`
	ExportedAt      int64  `json:"exported_at"`
}

// exportLine wraps each subsequent record with its kind.
type exportLine struct {
	Kind  string         `json:"kind"` // "brand" or "content"
	Brand *brand.Brand   `json:"brand,omitempty"`
	Piece *content.Piece `json:"piece,omitempty"`
}

// BrandExport writes one brand and all content referencing it to a
// JSONL file. The write goes to a temp file first and is renamed into
// place, so a failure preserves any existing file.
func BrandExport(st Stores, baseDir string, input BrandExportInput) (*BrandExportOutput, error) {
	if input.BrandID == "" {
		return nil, errors.NewInvalidRequest("brand id is required")
	}
	b, ok := st.Brands.GetByID(input.BrandID)
	if !ok {
		return nil, errors.NewNotFound("brand", input.BrandID)
	}

	now := time.Now()
	exportPath := input.Path
	if exportPath == "" {
		name := fmt.Sprintf("%s-%s.jsonl", slugify(b.Name), now.Format("20060102-150405"))
		exportPath = filepath.Join(baseDir, "exports", name)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	writeLine := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = file.Write(append(data, '\n'))
		return err
	}

	header := exportHeader{BrandloomExport: true, SchemaVersion: "1.0", ExportedAt: now.Unix()}
	if err := writeLine(header); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := writeLine(exportLine{Kind: "brand", Brand: &b}); err != nil {
		return nil, errors.NewInternal(err)
	}

	pieces := st.Content.ByBrand(b.ID)
	for i := range pieces {
		if err := writeLine(exportLine{Kind: "content", Piece: &pieces[i]}); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	if err := file.Close(); err != nil {
		file = nil
		return nil, errors.NewInternal(err)
	}
	file = nil

	if err := os.Rename(tempPath, exportPath); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}
	success = true

	return &BrandExportOutput{
		Path:       exportPath,
		Count:      len(pieces),
		ExportedAt: now.Unix(),
	}, nil
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify reduces a brand name to a safe file-name fragment.
func slugify(name string) string {
	s := slugUnsafe.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "brand"
	}
	return s
}
