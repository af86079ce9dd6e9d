package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mydehq/tagrename/internal/types"
)

// ScanResult holds the results of directory scanning
type ScanResult struct {
	Dir      string
	Files    []types.FileEntry // Regular files eligible for renaming, in listing order
	Existing []string          // Every name in the directory, including subdirectories
}

// Scan lists the regular files of dir (non-recursive). When formats is not
// empty only files with one of those extensions are returned; Existing always
// covers the whole directory so planned names cannot clobber anything.
func Scan(dir string, formats []string) (*ScanResult, error) {
	absDir, err := ValidateDir(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := &ScanResult{Dir: absDir}
	for _, e := range entries {
		result.Existing = append(result.Existing, e.Name())
		if !e.Type().IsRegular() {
			continue
		}

		f := SplitName(e.Name())
		f.Path = filepath.Join(absDir, e.Name())
		if len(formats) > 0 && !slices.ContainsFunc(formats, func(ext string) bool {
			return strings.EqualFold(ext, f.Ext)
		}) {
			continue
		}
		result.Files = append(result.Files, f)
	}

	return result, nil
}

// ValidateDir resolves dir and checks it is an existing directory.
func ValidateDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", types.ErrInvalidPath{Path: dir, Reason: "path is empty"}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absDir)
	if errors.Is(err, os.ErrNotExist) {
		return "", types.ErrInvalidPath{Path: absDir, Reason: "does not exist"}
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat path: %w", err)
	}
	if !info.IsDir() {
		return "", types.ErrInvalidPath{Path: absDir, Reason: "not a directory"}
	}
	return absDir, nil
}

// SplitName splits a filename into stem and extension (without the dot).
// Leading-dot names such as ".hidden" have no extension.
func SplitName(name string) types.FileEntry {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}
	return types.FileEntry{
		Name: name,
		Stem: stem,
		Ext:  strings.TrimPrefix(ext, "."),
	}
}
