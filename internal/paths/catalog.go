// Package paths generates the candidate path set for a scan: a fixed
// catalog of well-known paths, heuristic variations of them, and an
// optional filter that strips patterns likely to trip a WAF.
package paths

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// catalog groups the well-known paths probed on every scan. Entries are
// chosen to look like ordinary application traffic: no backup extensions,
// no config file names, no traversal sequences.
var catalog = map[string][]string{
	"api": {
		"/api", "/api/v1", "/api/v2", "/api/v3", "/graphql", "/rest",
		"/json", "/v1", "/v2", "/v3",
	},
	"auth": {
		"/auth", "/login", "/register", "/signin", "/signup", "/oauth",
		"/token", "/refresh", "/logout",
	},
	"app": {
		"/app", "/dashboard", "/admin", "/profile", "/settings", "/account",
		"/user", "/users", "/me", "/home",
	},
	"static": {
		"/static", "/assets", "/public", "/media", "/uploads", "/files",
		"/images", "/img", "/css", "/js", "/fonts", "/icons", "/svg",
	},
	"docs": {
		"/docs", "/documentation", "/api-docs", "/swagger", "/openapi",
	},
	"wellknown": {
		"/robots.txt", "/sitemap.xml", "/favicon.ico", "/humans.txt",
		"/security.txt",
	},
	"health": {
		"/health", "/status", "/ping", "/ready", "/live", "/healthcheck",
	},
	"framework": {
		"/_next", "/_next/data", "/__nuxt", "/_nuxt", "/_astro", "/build",
		"/dist",
	},
	"data": {
		"/search", "/query", "/data", "/list", "/items", "/products",
		"/catalog", "/store", "/shop",
	},
	"content": {
		"/config", "/configuration", "/options", "/blog", "/posts",
		"/articles", "/news", "/updates", "/feed",
	},
	"support": {
		"/contact", "/about", "/support", "/help", "/faq", "/terms",
		"/privacy",
	},
}

// BasePaths returns the full well-known path catalog, including a
// trailing-slash twin for every directory-like entry. The result is
// deduplicated and sorted, so repeated calls yield identical slices.
func BasePaths() []string {
	seen := make(map[string]struct{}, 256)
	for _, group := range catalog {
		for _, p := range group {
			seen[p] = struct{}{}
			if !strings.Contains(p, ".") {
				seen[p+"/"] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// LoadExtra reads additional candidate paths from a file, one per line.
// Blank lines and # comments are skipped, duplicates removed, and entries
// missing a leading slash are corrected rather than rejected.
func LoadExtra(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading paths file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = Normalize(line)
		if _, ok := seen[line]; !ok {
			seen[line] = struct{}{}
			out = append(out, line)
		}
	}
	return out, nil
}

// Normalize ensures a candidate path begins with a single leading slash.
func Normalize(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
