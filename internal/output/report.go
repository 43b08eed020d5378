package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/analyze"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/scanner"
)

// SecretEntry is one detected secret in the report, with the path it was
// found under.
type SecretEntry struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Risk  string `json:"risk"`
}

// Intelligence aggregates analysis across all findings.
type Intelligence struct {
	SecretsFound []SecretEntry `json:"secrets_found"`
	Technologies []string      `json:"technologies_detected"`
	RiskSummary  RiskSummary   `json:"risk_assessment"`
}

// RiskSummary counts the risk-relevant outcomes of a scan.
type RiskSummary struct {
	TotalSecrets   int `json:"total_secrets"`
	SensitiveFiles int `json:"sensitive_files"`
}

// Report is the JSON document written as scan_report.json.
type Report struct {
	TargetURL         string        `json:"target_url"`
	ScanTimestamp     int64         `json:"scan_timestamp"`
	ScanDuration      float64       `json:"scan_duration"`
	TotalPathsScanned int           `json:"total_paths_scanned"`
	SuccessfulFinds   int           `json:"successful_finds"`
	SavedFiles        int           `json:"saved_files"`
	ErrorsCount       int           `json:"errors_count"`
	SuccessfulPaths   []string      `json:"successful_paths"`
	IntelligenceData  *Intelligence `json:"intelligence_data,omitempty"`
}

// BuildReport assembles the report document from a finalized session.
// intel may be nil when analysis is disabled; savedFiles counts bodies
// written to disk.
func BuildReport(s *scanner.Session, intel *Intelligence, savedFiles int) Report {
	findings := s.Findings()
	paths := make([]string, 0, len(findings))
	for _, f := range findings {
		paths = append(paths, f.Path)
	}
	return Report{
		TargetURL:         s.TargetURL,
		ScanTimestamp:     s.StartedAt.Unix(),
		ScanDuration:      s.Duration().Seconds(),
		TotalPathsScanned: s.ResultCount(),
		SuccessfulFinds:   len(findings),
		SavedFiles:        savedFiles,
		ErrorsCount:       s.ErrorCount(),
		SuccessfulPaths:   paths,
		IntelligenceData:  intel,
	}
}

// BuildIntelligence runs content analysis over every finding and rolls the
// results up into the report's intelligence section.
func BuildIntelligence(findings []scanner.ProbeResult, caps analyze.Capabilities) *Intelligence {
	intel := &Intelligence{SecretsFound: []SecretEntry{}, Technologies: []string{}}
	techSeen := make(map[string]struct{})
	for _, f := range findings {
		rep := analyze.Content(f.Body, caps)
		for _, sec := range rep.Secrets {
			intel.SecretsFound = append(intel.SecretsFound, SecretEntry{
				Path:  f.Path,
				Type:  sec.Type,
				Value: sec.Value,
				Risk:  string(sec.Risk),
			})
		}
		for _, tech := range rep.Technologies {
			if _, ok := techSeen[tech]; !ok {
				techSeen[tech] = struct{}{}
				intel.Technologies = append(intel.Technologies, tech)
			}
		}
		if analyze.SensitivePath(f.Path) {
			intel.RiskSummary.SensitiveFiles++
		}
	}
	intel.RiskSummary.TotalSecrets = len(intel.SecretsFound)
	return intel
}

// WriteJSON writes the report as indented JSON to dir/scan_report.json and
// returns the full path.
func (r Report) WriteJSON(dir string) (string, error) {
	path := filepath.Join(dir, "scan_report.json")
	if err := r.WriteJSONTo(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSONTo writes the report to an explicit file path.
func (r Report) WriteJSONTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
