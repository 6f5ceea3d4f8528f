package source

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Blake3Hash computes the BLAKE3 hash of the given data.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// DigestFile computes the BLAKE3 hash of the raw bytes of path,
// without decompression, so the digest identifies the file as
// distributed.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
