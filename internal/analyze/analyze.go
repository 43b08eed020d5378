// Package analyze runs regex-based heuristics over saved response bodies:
// secret detection and technology fingerprinting. Pure functions, no I/O.
package analyze

import (
	"regexp"
	"sort"
	"strings"
)

// RiskLevel ranks how bad a leaked secret is.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Secret is one matched secret pattern. Value is truncated for display so
// reports never reproduce a full credential.
type Secret struct {
	Type  string
	Value string
	Risk  RiskLevel
}

// Report is the analysis outcome for one body.
type Report struct {
	Secrets      []Secret
	Technologies []string
}

type secretPattern struct {
	name string
	re   *regexp.Regexp
	risk RiskLevel
	// group selects which capture holds the secret value; 0 = whole match.
	group int
}

var secretPatterns = []secretPattern{
	{"api_key", regexp.MustCompile(`(?i)["']?(?:api[_-]?key|access[_-]?key|secret[_-]?key)["']?\s*[:=]\s*["']([a-zA-Z0-9_-]{20,50})["']`), RiskHigh, 1},
	{"jwt_token", regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RiskMedium, 0},
	{"aws_key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`), RiskHigh, 0},
	{"private_key", regexp.MustCompile(`-----BEGIN (?:RSA|DSA|EC|OPENSSH) PRIVATE KEY-----`), RiskHigh, 0},
	{"password", regexp.MustCompile(`(?i)["']?(?:password|pwd|pass)["']?\s*[:=]\s*["']([^"']+)["']`), RiskHigh, 1},
	{"database_url", regexp.MustCompile(`(?:mysql|postgres|mongodb)://[^\s"']+`), RiskMedium, 0},
	{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RiskLow, 0},
	{"ip_address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), RiskLow, 0},
}

// techIndicators maps a technology name to substrings whose presence
// fingerprints it.
var techIndicators = map[string][]string{
	"react":     {"react-dom", "createElement", "_reactRootContainer"},
	"vue":       {"v-model", "v-for", "v-if", "Vue.component"},
	"angular":   {"ng-app", "ng-controller", "@angular"},
	"nodejs":    {"module.exports", "require(", "express"},
	"php":       {"<?php", "$_GET", "$_POST"},
	"jquery":    {"jQuery", "jquery"},
	"bootstrap": {"bootstrap", "navbar-toggler"},
	"wordpress": {"wp-content", "wp-includes", "wp-json"},
	"laravel":   {"laravel_session", "X-CSRF-TOKEN"},
	"django":    {"csrfmiddlewaretoken", "__admin_media_prefix__"},
}

// Capabilities selects which analyses run. The zero value disables
// everything; use All for the default analyzer.
type Capabilities struct {
	Secrets      bool
	Technologies bool
}

// All enables every analysis.
var All = Capabilities{Secrets: true, Technologies: true}

// Content analyzes a body for leaked secrets and technology markers
// according to caps. Bodies under 50 bytes carry too little signal and
// return an empty report.
func Content(body []byte, caps Capabilities) Report {
	if len(body) < 50 {
		return Report{}
	}
	text := string(body)
	var rep Report
	if caps.Secrets {
		rep.Secrets = detectSecrets(text)
	}
	if caps.Technologies {
		rep.Technologies = detectTechnologies(text)
	}
	return rep
}

func detectSecrets(text string) []Secret {
	var out []Secret
	seen := make(map[string]struct{})
	for _, sp := range secretPatterns {
		for _, m := range sp.re.FindAllStringSubmatch(text, -1) {
			value := m[sp.group]
			if !plausibleSecret(sp.name, value) {
				continue
			}
			key := sp.name + "\x00" + value
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Secret{Type: sp.name, Value: truncate(value, 50), Risk: sp.risk})
		}
	}
	return out
}

// plausibleSecret weeds out matches that are syntactically valid but
// obviously not real credentials.
func plausibleSecret(kind, value string) bool {
	switch kind {
	case "api_key":
		return len(value) >= 10
	case "email":
		return !strings.Contains(value, "example.com")
	case "password":
		return value != "" && value != "password"
	case "ip_address":
		return validIPv4(value) && value != "0.0.0.0" && value != "127.0.0.1"
	}
	return true
}

func validIPv4(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if len(part) > 1 && part[0] == '0' {
			return false
		}
		n := 0
		for _, c := range part {
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}

func detectTechnologies(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for tech, indicators := range techIndicators {
		for _, ind := range indicators {
			if strings.Contains(lower, strings.ToLower(ind)) {
				out = append(out, tech)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// SensitivePath reports whether a path name alone suggests sensitive
// content, used for risk summaries in the final report.
func SensitivePath(p string) bool {
	lower := strings.ToLower(p)
	for _, ind := range []string{".env", "config", "secret", "password", "key", "admin", "database"} {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
