package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/analyze"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/scanner"
)

func TestFolderName(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://api.example.com", "api.example"},
		{"https://example.com", "example"},
		{"https://staging.internal.corp.net", "staging.internal"},
		{"https://my-app.vercel.app", "my-app"},
	}
	for _, tc := range cases {
		if got := FolderName(tc.url); got != tc.want {
			t.Errorf("FolderName(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestFolderNameFallback(t *testing.T) {
	if got := FolderName("not a url"); !strings.HasPrefix(got, "scan_") {
		t.Fatalf("expected scan_ fallback, got %q", got)
	}
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		path        string
		contentType string
		want        string
	}{
		{"/api/users", "application/json", "api"},
		{"/health", "application/json; charset=utf-8", "api"},
		{"/static/app.js", "application/javascript", "static"},
		{"/assets/style.css", "text/css", "static"},
		{"/docs", "text/html", "docs"},
		{"/swagger.json", "application/json", "api"},
		{"/about", "text/html", "other"},
	}
	for _, tc := range cases {
		if got := Categorize(tc.path, tc.contentType); got != tc.want {
			t.Errorf("Categorize(%q, %q) = %q, want %q", tc.path, tc.contentType, got, tc.want)
		}
	}
}

func TestSetupOutputDirAndSave(t *testing.T) {
	base := t.TempDir()
	dir, err := SetupOutputDir(base, "https://example.com")
	if err != nil {
		t.Fatal(err)
	}
	for _, cat := range categories {
		if _, err := os.Stat(filepath.Join(dir, cat)); err != nil {
			t.Fatalf("missing category dir %s: %v", cat, err)
		}
	}

	findings := []scanner.ProbeResult{
		{Path: "/api/users", ContentType: "application/json", Body: []byte(`{"users":[]}`), Finding: true},
		{Path: "/robots.txt", ContentType: "text/plain", Body: []byte("User-agent: *"), Finding: true},
		{Path: "/empty", ContentType: "text/plain", Finding: true},
	}
	if saved := SaveFindings(dir, findings); saved != 2 {
		t.Fatalf("saved = %d, want 2 (empty body skipped)", saved)
	}
	data, err := os.ReadFile(filepath.Join(dir, "api", "api_users.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"users":[]}` {
		t.Fatalf("saved body = %q", data)
	}
}

func TestBuildReportShape(t *testing.T) {
	s := scanner.NewSession("https://example.com", 10)
	if err := s.Record(scanner.ProbeResult{Path: "/api", StatusCode: 200, Finding: true}); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(scanner.ProbeResult{Path: "/admin", StatusCode: 403}); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(scanner.ProbeResult{Path: "/x", FailKind: scanner.FailureConnection, ErrMsg: "refused"}); err != nil {
		t.Fatal(err)
	}
	s.Finalize()

	rep := BuildReport(s, nil, 1)
	if rep.TargetURL != "https://example.com" {
		t.Errorf("target = %q", rep.TargetURL)
	}
	if rep.TotalPathsScanned != 3 || rep.SuccessfulFinds != 1 || rep.ErrorsCount != 1 {
		t.Errorf("counts = %d/%d/%d", rep.TotalPathsScanned, rep.SuccessfulFinds, rep.ErrorsCount)
	}
	if len(rep.SuccessfulPaths) != 1 || rep.SuccessfulPaths[0] != "/api" {
		t.Errorf("paths = %v", rep.SuccessfulPaths)
	}

	dir := t.TempDir()
	path, err := rep.WriteJSON(dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"target_url", "scan_timestamp", "scan_duration",
		"total_paths_scanned", "successful_finds", "errors_count", "successful_paths"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("report missing key %q", key)
		}
	}
}

func TestBuildIntelligence(t *testing.T) {
	findings := []scanner.ProbeResult{
		{Path: "/.env", Body: []byte(`DATABASE_URL=postgres://user:pw@db.internal:5432/prod plus padding here`)},
		{Path: "/index.html", Body: []byte(`<html><script src="jquery.min.js"></script><div>welcome to the site</div></html>`)},
	}
	intel := BuildIntelligence(findings, analyze.All)
	if intel.RiskSummary.TotalSecrets == 0 {
		t.Error("expected at least one secret")
	}
	if intel.RiskSummary.SensitiveFiles != 1 {
		t.Errorf("sensitive files = %d, want 1", intel.RiskSummary.SensitiveFiles)
	}
	found := false
	for _, tech := range intel.Technologies {
		if tech == "jquery" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected jquery in %v", intel.Technologies)
	}
}

func TestPrinterQuietSuppressesMessages(t *testing.T) {
	var out, errBuf strings.Builder
	p := &Printer{Out: &out, Err: &errBuf, Quiet: true}
	p.Infof("hello")
	p.Successf("world")
	if errBuf.Len() != 0 {
		t.Fatalf("quiet printer wrote %q", errBuf.String())
	}
	p.Errorf("boom")
	if errBuf.Len() == 0 {
		t.Fatal("errors must print even when quiet")
	}
	p.Result(scanner.ProbeResult{Path: "/api", StatusCode: 200, ContentLength: 42, Finding: true})
	if !strings.Contains(out.String(), "/api") {
		t.Fatalf("result line missing path: %q", out.String())
	}
	p.Summary(mustSession(t))
	// summary goes to stderr and respects quiet
}

func mustSession(t *testing.T) *scanner.Session {
	t.Helper()
	s := scanner.NewSession("https://example.com", 1)
	if err := s.Record(scanner.ProbeResult{Path: "/", StatusCode: 200}); err != nil {
		t.Fatal(err)
	}
	s.Finalize()
	return s
}

func TestProgressFuncNilBar(t *testing.T) {
	fn := ProgressFunc(nil)
	fn(1, 10) // must not panic
}
