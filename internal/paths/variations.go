package paths

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

// traversalParts are inserted between path segments in aggressive mode.
var traversalParts = []string{"../", "./", "..;/", "%2e%2e/"}

// extensionSubs are appended or swapped onto the last segment in
// aggressive mode.
var extensionSubs = []string{".json", ".js", ".html", ".xml", ".txt", ".bak", ".old"}

// naturalParams produces query-string variants that resemble ordinary
// client traffic. Cache-buster and callback values take a random token
// from rnd, so two runs differ only in those digits.
func naturalParams(p string, rnd *rand.Rand) []string {
	return []string{
		p,
		p + "?v=1",
		p + "?version=1",
		p + "?format=json",
		fmt.Sprintf("%s?callback=jsonp%d", p, 1000+rnd.Intn(9000)),
		fmt.Sprintf("%s?_=%d", p, 1000000000+rnd.Int63n(9000000000)),
		p + "?cache=true",
		p + "?preview=1",
		p + "?lang=en",
		p + "?locale=en_US",
		p + "?source=web",
		p + "?platform=desktop",
	}
}

// Variations expands each base path into probe candidates. Natural
// query-parameter variants are always emitted. With aggressive set,
// encoding transforms, case permutations, traversal insertions, and
// extension substitutions are added; each transform is applied
// independently, and exactly one encoding is composed with one traversal
// insertion per base path to keep the output bounded.
//
// Empty input yields empty output. Paths missing a leading slash are
// normalized before expansion.
func Variations(bases []string, aggressive bool, rnd *rand.Rand) []string {
	seen := make(map[string]struct{}, len(bases)*16)
	var out []string
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, base := range bases {
		base = Normalize(base)
		for _, v := range naturalParams(base, rnd) {
			add(v)
		}
		if !aggressive {
			continue
		}

		for _, enc := range encodings(base) {
			add(enc)
		}
		for _, cv := range caseVariations(base) {
			add(cv)
		}
		for _, tv := range traversalVariations(base) {
			add(tv)
		}
		for _, ev := range extensionVariations(base) {
			add(ev)
		}
		// One encoding composed with one traversal insertion. Composing
		// the full cross product would blow up the candidate set.
		add(Normalize(urlEncode(base) + "../"))
		add(Normalize(urlEncode(base + "../")))
	}
	return out
}

func encodings(p string) []string {
	stripped := strings.TrimPrefix(p, "/")
	encs := []string{
		urlEncode(p),
		urlEncode(urlEncode(p)),
		"/" + hex.EncodeToString([]byte(stripped)),
		"/" + base64.StdEncoding.EncodeToString([]byte(stripped)),
		"/" + htmlEntityEncode(stripped),
	}
	var out []string
	for _, e := range encs {
		e = Normalize(e)
		if e != p {
			out = append(out, e)
		}
	}
	return out
}

// urlEncode percent-encodes every byte outside the unreserved set,
// including the path separators.
func urlEncode(p string) string {
	escaped := url.QueryEscape(p)
	return Normalize(strings.ReplaceAll(escaped, "+", "%20"))
}

func htmlEntityEncode(s string) string {
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, "&#%d;", r)
	}
	return b.String()
}

// caseVariations covers upper, lower, title, and alternating-case forms.
func caseVariations(p string) []string {
	var alt strings.Builder
	for i, r := range p {
		if i%2 == 0 {
			alt.WriteString(strings.ToUpper(string(r)))
		} else {
			alt.WriteString(strings.ToLower(string(r)))
		}
	}

	candidates := []string{
		strings.ToUpper(p),
		strings.ToLower(p),
		titleCase(p),
		alt.String(),
	}
	var out []string
	for _, c := range candidates {
		if c != p {
			out = append(out, c)
		}
	}
	return out
}

func titleCase(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		if s == "" {
			continue
		}
		segs[i] = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
	return strings.Join(segs, "/")
}

// traversalVariations appends, prepends, and inserts traversal sequences
// between path segments. These candidates are only generated in
// aggressive mode and carry their traversal markers openly; the stealth
// filter is what strips them, never this generator.
func traversalVariations(p string) []string {
	var out []string
	for _, t := range traversalParts {
		out = append(out, p+t, Normalize(t+strings.TrimPrefix(p, "/")))
	}

	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if len(segs) > 1 {
		for i := 1; i < len(segs); i++ {
			for _, t := range traversalParts[:2] {
				withInsert := append(append([]string{}, segs[:i]...), strings.TrimSuffix(t, "/"))
				withInsert = append(withInsert, segs[i:]...)
				out = append(out, "/"+strings.Join(withInsert, "/"))
			}
		}
	}
	return out
}

func extensionVariations(p string) []string {
	trimmed := strings.TrimSuffix(p, "/")
	if trimmed == "" {
		return nil
	}
	bare := trimmed
	if dot := strings.LastIndex(trimmed, "."); dot > strings.LastIndex(trimmed, "/") {
		bare = trimmed[:dot]
	}
	var out []string
	for _, ext := range extensionSubs {
		out = append(out, bare+ext)
		if bare != trimmed {
			out = append(out, trimmed+ext) // double extension
		}
	}
	return out
}
