package paths

import "strings"

// suspiciousPatterns flag candidates likely to trip a WAF or IDS: raw
// traversal sequences, backup and dump extensions, and obvious config
// file names. Matching is plain substring containment.
var suspiciousPatterns = []string{
	"..", "//", ".bak", ".old", ".sql", ".zip", ".tar", ".gz",
	".log", ".tmp", ".temp", ".swp", ".swo", ".env",
	".js.map", ".css.map", "config.json", "package.json",
	"composer.json", "wp-", "%2e%2e", "&#",
}

// IsSuspicious reports whether a candidate contains any denylisted
// pattern.
func IsSuspicious(p string) bool {
	lower := strings.ToLower(p)
	for _, pat := range suspiciousPatterns {
		if strings.Contains(lower, pat) {
			return true
		}
	}
	return false
}

// FilterNatural returns only the candidates free of suspicious patterns.
// This is the final step before dispatch in stealth mode; aggressive
// scans skip it entirely so traversal and encoding candidates survive.
func FilterNatural(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if !IsSuspicious(p) {
			out = append(out, p)
		}
	}
	return out
}
