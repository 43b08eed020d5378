package output

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/scanner"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// categories are the subdirectories bodies are sorted into.
var categories = []string{"api", "static", "docs", "other"}

// FolderName derives a short directory name from the target URL: the
// hostname's first label, or first two labels when the first is a common
// subdomain.
func FolderName(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return "scan_" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	parts := strings.Split(u.Hostname(), ".")
	name := parts[0]
	if len(parts) >= 3 {
		switch parts[0] {
		case "api", "www", "app", "admin", "test", "staging", "dev":
			name = parts[0] + "." + parts[1]
		}
	}
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" || name == "_" {
		return "scan_" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	return name
}

// SetupOutputDir creates baseDir/<folder>_<timestamp> with one
// subdirectory per category and returns the path.
func SetupOutputDir(baseDir, target string) (string, error) {
	dir := filepath.Join(baseDir,
		FolderName(target)+"_"+strconv.FormatInt(time.Now().Unix(), 10))
	for _, cat := range categories {
		if err := os.MkdirAll(filepath.Join(dir, cat), 0o755); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// Categorize picks a category subdirectory from the response content type
// and the request path.
func Categorize(path, contentType string) string {
	ct := strings.ToLower(contentType)
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(ct, "json") || strings.Contains(lower, "/api") || strings.Contains(lower, "graphql"):
		return "api"
	case strings.Contains(ct, "javascript") || strings.Contains(ct, "css") ||
		strings.Contains(lower, "/static") || strings.Contains(lower, "/assets"):
		return "static"
	case strings.Contains(lower, "docs") || strings.Contains(lower, "swagger") ||
		strings.Contains(lower, "openapi") || strings.Contains(lower, "readme"):
		return "docs"
	}
	return "other"
}

// SaveBody writes a finding's body under dir in its category subdirectory
// and returns the file path. The filename is the path with separators
// flattened to underscores.
func SaveBody(dir string, r scanner.ProbeResult) (string, error) {
	name := strings.Trim(strings.ReplaceAll(r.Path, "/", "_"), "_")
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" {
		name = "root"
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	full := filepath.Join(dir, Categorize(r.Path, r.ContentType), name)
	if err := os.WriteFile(full, r.Body, 0o644); err != nil {
		return "", err
	}
	return full, nil
}

// SaveFindings persists every finding body and returns how many files were
// written. Individual write failures are skipped, not fatal.
func SaveFindings(dir string, findings []scanner.ProbeResult) int {
	saved := 0
	for _, f := range findings {
		if len(f.Body) == 0 {
			continue
		}
		if _, err := SaveBody(dir, f); err == nil {
			saved++
		}
	}
	return saved
}
