package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileScanner discovers loadable CSV event logs under a base directory for
// the dashboard's file picker.
type FileScanner struct {
	logger   *zap.Logger
	basePath string
}

// FileInfo describes one discovered CSV file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

func NewFileScanner(logger *zap.Logger, basePath string) *FileScanner {
	return &FileScanner{
		logger:   logger,
		basePath: basePath,
	}
}

// GetCSVFiles returns all CSV files under the base path, newest first.
// A missing base path yields an empty result, not an error; the dashboard
// then falls back to "no data available" handling.
func (fs *FileScanner) GetCSVFiles() ([]FileInfo, error) {
	var files []FileInfo

	if _, err := os.Stat(fs.basePath); os.IsNotExist(err) {
		return files, nil
	}

	err := filepath.Walk(fs.basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Continue walking
		}

		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			files = append(files, FileInfo{
				Path:    path,
				Name:    filepath.Base(path),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}

		return nil
	})

	if err != nil {
		fs.logger.Error("Failed to walk data directory", zap.Error(err))
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	fs.logger.Info("Scanned data directory",
		zap.String("basePath", fs.basePath),
		zap.Int("csvFiles", len(files)))

	return files, nil
}
