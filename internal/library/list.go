// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes one guide file found on disk.
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// ListDir scans dir for guide files (.md and .docx), newest first, up to
// limit (0 means no limit). A missing directory yields an empty list, not an
// error.
func ListDir(dir string, limit int) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".md" && ext != ".docx" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:     name,
			Path:     filepath.Join(dir, name),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}
