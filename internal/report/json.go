package report

import (
	"encoding/json"
	"io"

	"github.com/tos-network/logcheck/internal/domain"
)

type jsonRenderer struct{}

type jsonFileStats struct {
	Count   int                  `json:"count"`
	ByLevel map[domain.Level]int `json:"by_level"`
}

type jsonReport struct {
	Summary  domain.Summary           `json:"summary"`
	Files    map[string]jsonFileStats `json:"files"`
	Findings []domain.Finding         `json:"findings"`
}

func (jr *jsonRenderer) Render(w io.Writer, r *Report) error {
	files := make(map[string]jsonFileStats, len(r.Files))
	for _, fr := range r.Files {
		files[fr.Path] = jsonFileStats{
			Count:   fr.Count(),
			ByLevel: fr.ByLevel(),
		}
	}

	findings := r.Findings()
	if findings == nil {
		findings = []domain.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Summary:  r.Summary,
		Files:    files,
		Findings: findings,
	})
}
