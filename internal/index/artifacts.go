package index

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/nratzan/dit-2026/internal/chunker"
)

const (
	vectorsFile  = "embeddings.bin"
	manifestFile = "manifest.json"
)

// Manifest pairs the vector array with per-chunk metadata. Record order must
// match vector row order exactly: row i of embeddings.bin is Chunks[i].
type Manifest struct {
	Model      string          `json:"model"`
	Dimensions int             `json:"dimensions"`
	Shape      [2]int          `json:"shape"`
	Chunks     []chunker.Chunk `json:"chunks"`
}

// Save persists the vector array and manifest atomically: both artifacts are
// written to temp files and renamed into place together, so a crashed build
// never leaves a mismatched pair behind.
func Save(dir string, vectors [][]float32, man *Manifest) error {
	if len(vectors) != len(man.Chunks) {
		return fmt.Errorf("vector count %d does not match chunk count %d", len(vectors), len(man.Chunks))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	vecPath := filepath.Join(dir, vectorsFile)
	manPath := filepath.Join(dir, manifestFile)

	raw := make([]byte, 0, len(vectors)*man.Dimensions*4)
	var buf [4]byte
	for i, row := range vectors {
		if len(row) != man.Dimensions {
			return fmt.Errorf("row %d has dimension %d, want %d", i, len(row), man.Dimensions)
		}
		for _, v := range row {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
			raw = append(raw, buf[:]...)
		}
	}

	manJSON, err := json.MarshalIndent(man, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(vecPath+".tmp", raw, 0o644); err != nil {
		return fmt.Errorf("write vectors: %w", err)
	}
	if err := os.WriteFile(manPath+".tmp", manJSON, 0o644); err != nil {
		os.Remove(vecPath + ".tmp")
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(vecPath+".tmp", vecPath); err != nil {
		return fmt.Errorf("install vectors: %w", err)
	}
	if err := os.Rename(manPath+".tmp", manPath); err != nil {
		return fmt.Errorf("install manifest: %w", err)
	}
	return nil
}

// Load reads both artifacts and validates the positional join: the byte length
// of the vector file must match the manifest shape, and the shape must match
// the chunk count. A mismatched pair is a load error, never a silent skew.
func Load(dir string) ([][]float32, *Manifest, error) {
	manJSON, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, nil, err
	}
	var man Manifest
	if err := json.Unmarshal(manJSON, &man); err != nil {
		return nil, nil, fmt.Errorf("parse manifest: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, vectorsFile))
	if err != nil {
		return nil, nil, err
	}

	n, d := man.Shape[0], man.Shape[1]
	if n != len(man.Chunks) {
		return nil, nil, fmt.Errorf("manifest shape rows %d do not match chunk count %d", n, len(man.Chunks))
	}
	if d != man.Dimensions {
		return nil, nil, fmt.Errorf("manifest shape dims %d do not match dimensions %d", d, man.Dimensions)
	}
	if len(raw) != n*d*4 {
		return nil, nil, fmt.Errorf("vector file is %d bytes, want %d for shape [%d,%d]", len(raw), n*d*4, n, d)
	}

	vectors := make([][]float32, n)
	for i := 0; i < n; i++ {
		row := make([]float32, d)
		for j := 0; j < d; j++ {
			off := (i*d + j) * 4
			row[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[off : off+4]))
		}
		vectors[i] = row
	}
	return vectors, &man, nil
}
