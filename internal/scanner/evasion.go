package scanner

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync/atomic"
)

// userAgents is the rotation pool for the User-Agent header. Current
// desktop browser strings; bots get blocked, browsers do not.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0",
}

var uaCounter atomic.Uint64

// nextUserAgent rotates through the pool. A counter rather than a random
// pick keeps consecutive requests from repeating the same string.
func nextUserAgent() string {
	n := uaCounter.Add(1)
	return userAgents[n%uint64(len(userAgents))]
}

func randomIPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+rand.Intn(254), rand.Intn(256), rand.Intn(256), 1+rand.Intn(254))
}

// applyEvasionHeaders sets the browser-like header set on a request.
// Called per attempt, so the User-Agent and spoofed client IPs change
// between retries of the same path.
func applyEvasionHeaders(req *http.Request) {
	ip := randomIPv4()
	req.Header.Set("User-Agent", nextUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	// Accept-Encoding is left to the transport: setting it by hand
	// disables Go's transparent gzip decoding, and classification needs
	// decoded bodies.
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Forwarded-For", ip)
	req.Header.Set("CF-Connecting-IP", ip)
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}
