package ionetcdf

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// FileHash returns the SHA-256 hex digest of a file's content. The
// digest is the dedup key: the same file ingested twice maps to one
// stored profile.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", HashError(path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", HashError(path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
