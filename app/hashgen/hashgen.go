// Package hashgen computes digests of text, files, and directory trees.
package hashgen

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/minio/highwayhash"
)

// Algorithm identifies a supported digest algorithm.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	Highway Algorithm = "highway"
)

// DefaultAlgorithm is used when no algorithm is specified.
const DefaultAlgorithm = SHA1

// highwayKey is the fixed 32-byte key for HighwayHash. Digests are only
// comparable to digests produced with the same key.
var highwayKey = []byte("qdevkit-highwayhash-fixed-key-01")

// Algorithms lists the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512, Highway}
}

func newHasher(algo Algorithm) (hash.Hash, error) {
	switch algo {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case Highway:
		h, err := highwayhash.New(highwayKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create hash: %w", err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", algo)
	}
}

// HashText returns the hex digest of text under the given algorithm.
func HashText(text string, algo Algorithm) (string, error) {
	h, err := newHasher(algo)
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile streams the file through the given algorithm. Compressed files
// (gzip, bzip2, xz, detected by magic bytes) are hashed over their
// decompressed content.
func HashFile(path string, algo Algorithm) (string, error) {
	h, err := newHasher(algo)
	if err != nil {
		return "", err
	}

	ct, err := DetectCompressionByMagic(path)
	if err != nil {
		return "", err
	}
	r, err := GetDecompressingReader(path, ct)
	if err != nil {
		return "", err
	}
	defer r.Close()

	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
