// Package scanner discovers candidate source files under a root directory.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Scanner walks a source tree and returns the files worth analyzing.
type Scanner struct {
	extension     string
	excludedDirs  map[string]bool
	skipFragments []string
	logger        *zap.SugaredLogger
}

// New creates a Scanner. extension is the source-file suffix to include
// (e.g. ".rs"); excludedDirs are directory names pruned entirely;
// skipFragments exclude any file whose relative path contains one of them.
// On top of excludedDirs, dot-prefixed directories below the root (.git,
// .cargo, ...) are always pruned, so VCS and tool state never has to be
// listed explicitly.
func New(extension string, excludedDirs, skipFragments []string, logger *zap.SugaredLogger) *Scanner {
	excluded := make(map[string]bool, len(excludedDirs))
	for _, name := range excludedDirs {
		excluded[name] = true
	}
	return &Scanner{
		extension:     extension,
		excludedDirs:  excluded,
		skipFragments: skipFragments,
		logger:        logger,
	}
}

// FindSourceFiles recursively collects matching files under root and
// returns their slash-separated paths relative to root, in walk order.
func (s *Scanner) FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entries are skipped, not fatal.
			s.logger.Warnf("skipping %s: %v", path, err)
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.excludedDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, s.extension) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		for _, fragment := range s.skipFragments {
			if strings.Contains(rel, fragment) {
				return nil
			}
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
