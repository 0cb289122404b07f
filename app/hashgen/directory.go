package hashgen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FileDigest is one file's digest within a directory hash.
type FileDigest struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// DirectoryHash is the combined digest of a directory tree plus the per-file
// digests it was derived from.
type DirectoryHash struct {
	Combined string       `json:"combined"`
	Files    []FileDigest `json:"files"`
}

// HashDirectory hashes every file under root matching pattern (doublestar
// syntax, e.g. "**/*" or "**/*.log") with the given algorithm.
// The combined digest covers both file content and relative paths, so
// renaming a file changes it. File paths are sorted before combining to make
// the result independent of traversal order.
func HashDirectory(root string, pattern string, algo Algorithm) (*DirectoryHash, error) {
	if pattern == "" {
		pattern = "**/*"
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(absRoot, pattern))
	if err != nil {
		return nil, fmt.Errorf("pattern matching failed: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, match)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched %q under %s", pattern, absRoot)
	}
	sort.Strings(files)

	result := &DirectoryHash{Files: make([]FileDigest, 0, len(files))}
	var combinedData []byte
	for _, path := range files {
		digest, err := HashFile(path, algo)
		if err != nil {
			// Skip files that can't be read, but continue with others
			continue
		}
		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			continue
		}
		result.Files = append(result.Files, FileDigest{Path: relPath, Digest: digest})
		combinedData = append(combinedData, []byte(digest)...)
		combinedData = append(combinedData, []byte(relPath)...)
	}
	if len(combinedData) == 0 {
		return nil, fmt.Errorf("failed to hash any files in directory")
	}

	finalHash := sha256.Sum256(combinedData)
	result.Combined = hex.EncodeToString(finalHash[:])
	return result, nil
}
