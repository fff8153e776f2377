package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/nexograph/nexograph/dmmf"
)

// SnapshotFile is the fingerprint file name written next to the artifacts.
const SnapshotFile = ".nexograph.snapshot"

// Fingerprint returns a stable hex digest of the document. Two documents
// with identical content always produce the same digest, which lets watch
// mode skip regeneration for no-op file events.
func Fingerprint(doc *dmmf.Document) (string, error) {
	data, err := msgpack.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("fingerprint document: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// WriteSnapshot writes the document fingerprint under the target directory.
func WriteSnapshot(targetDir string, doc *dmmf.Document) error {
	fp, err := Fingerprint(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(targetDir, SnapshotFile), []byte(fp+"\n"), 0o644)
}

// ReadSnapshot reads a previously written fingerprint. A missing snapshot
// returns an empty string and no error.
func ReadSnapshot(targetDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(targetDir, SnapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Changed reports whether the document differs from the last snapshot in the
// target directory. A missing snapshot counts as changed.
func Changed(targetDir string, doc *dmmf.Document) (bool, error) {
	prev, err := ReadSnapshot(targetDir)
	if err != nil {
		return false, err
	}
	if prev == "" {
		return true, nil
	}
	cur, err := Fingerprint(doc)
	if err != nil {
		return false, err
	}
	return prev != cur, nil
}
