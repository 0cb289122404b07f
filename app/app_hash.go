package app

import (
	"fmt"

	"qdevkit/app/hashgen"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func resolveAlgorithm(name string) hashgen.Algorithm {
	if name == "" {
		return hashgen.DefaultAlgorithm
	}
	return hashgen.Algorithm(name)
}

// GetHashAlgorithms lists the supported digest algorithms
func (a *App) GetHashAlgorithms() []string {
	algos := hashgen.Algorithms()
	out := make([]string, len(algos))
	for i, algo := range algos {
		out[i] = string(algo)
	}
	return out
}

// HashText returns the hex digest of text
func (a *App) HashText(req HashTextRequest) (string, error) {
	digest, err := hashgen.HashText(req.Input, resolveAlgorithm(req.Algorithm))
	if err != nil {
		a.Log("error", fmt.Sprintf("Hash failed: %v", err))
		return "", err
	}
	return digest, nil
}

// HashFile opens a file picker and hashes the chosen file. Compressed files
// are hashed over their decompressed content. Returns nil if cancelled.
func (a *App) HashFile(algorithm string) (*HashFileResponse, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select File to Hash",
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		// User cancelled
		return nil, nil
	}

	digest, err := hashgen.HashFile(path, resolveAlgorithm(algorithm))
	if err != nil {
		a.Log("error", fmt.Sprintf("Hash failed for %s: %v", path, err))
		return nil, err
	}
	return &HashFileResponse{Path: path, Digest: digest}, nil
}

// HashDirectory opens a directory picker and hashes every matching file
// under it. The combined digest covers content and relative paths. Returns
// nil if cancelled.
func (a *App) HashDirectory(algorithm string, pattern string) (*HashDirectoryResponse, error) {
	path, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select Directory to Hash",
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	result, err := hashgen.HashDirectory(path, pattern, resolveAlgorithm(algorithm))
	if err != nil {
		a.Log("error", fmt.Sprintf("Directory hash failed for %s: %v", path, err))
		return nil, err
	}

	files := make(map[string]string, len(result.Files))
	for _, fd := range result.Files {
		files[fd.Path] = fd.Digest
	}
	a.Log("info", fmt.Sprintf("Hashed %d files under %s", len(files), path))
	return &HashDirectoryResponse{Path: path, Combined: result.Combined, Files: files}, nil
}
