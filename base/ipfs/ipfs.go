// Package ipfs rewrites decentralized storage references into fetchable gateway urls.
package ipfs

import (
	"regexp"
	"strings"
)

const (
	// DefaultGateway is the public gateway the pinning service hands out urls for
	DefaultGateway = "https://gateway.pinata.cloud/ipfs"

	schemePrefix = "ipfs://"
)

var (
	knownGateways = []string{
		DefaultGateway + "/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
	}
	dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
)

// Normalize maps uri onto DefaultGateway. See NormalizeWith.
func Normalize(uri string) string {
	return NormalizeWith(DefaultGateway, uri)
}

// NormalizeWith rewrites ipfs://<cid>[/path] into <gateway>/<cid>[/path].
// Anything that is not a scheme-style reference, including urls already on the
// gateway, is returned unchanged.
func NormalizeWith(gateway, uri string) string {
	if !strings.HasPrefix(uri, schemePrefix) {
		return uri
	}
	content := trimScheme(uri)
	if len(content) == 0 {
		return uri
	}
	return strings.TrimRight(gateway, "/") + "/" + content
}

// CID returns the content identifier (with any trailing path) referenced by uri,
// either in scheme form or behind a well known gateway.
func CID(uri string) (string, bool) {
	if strings.HasPrefix(uri, schemePrefix) {
		content := trimScheme(uri)
		return content, len(content) > 0
	}
	for _, p := range knownGateways {
		if strings.HasPrefix(uri, p) {
			content := strings.TrimPrefix(uri, p)
			return content, len(content) > 0
		}
	}
	if loc := dedicatedPinataRegex.FindStringIndex(uri); loc != nil {
		content := uri[loc[1]:]
		return content, len(content) > 0
	}
	return "", false
}

func trimScheme(uri string) string {
	content := strings.TrimPrefix(uri, schemePrefix)
	// legacy ipfs://ipfs/<cid> form
	return strings.TrimPrefix(content, "ipfs/")
}
