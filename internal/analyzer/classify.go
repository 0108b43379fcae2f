package analyzer

import "strings"

// Classifier tags a relative file path as hot-path and/or test code from
// configured path-fragment lists. Pure and deterministic; the fragment
// lists come from configuration, not from the analysis itself.
type Classifier struct {
	hotFragments  []string
	testFragments []string
}

// NewClassifier creates a Classifier from fragment allow-lists.
func NewClassifier(hotFragments, testFragments []string) *Classifier {
	return &Classifier{
		hotFragments:  hotFragments,
		testFragments: testFragments,
	}
}

// IsHotPath returns true if the path is performance critical.
func (c *Classifier) IsHotPath(relPath string) bool {
	return containsAny(relPath, c.hotFragments)
}

// IsTest returns true if the path is test, example, or benchmark code.
func (c *Classifier) IsTest(relPath string) bool {
	return containsAny(relPath, c.testFragments)
}

func containsAny(path string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}
