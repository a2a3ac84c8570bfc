// Package seo handles the decorated product slugs embedded in public URLs.
// The storefront wraps the real slug in a fixed marketing string; the prefix
// must match byte for byte or previously indexed URLs stop resolving.
package seo

import "strings"

const decorationPrefix = "onsal-elektronik-en-ucuz-en-kaliteli-www-onsalelektronik-com-"

// Decorate wraps a plain product slug into its public facing form.
func Decorate(slug string) string {
	return decorationPrefix + slug
}

// Strip removes the marketing decoration from an incoming slug so it can be
// looked up in the catalog. Plain slugs pass through unchanged.
func Strip(slug string) string {
	return strings.Replace(slug, decorationPrefix, "", 1)
}
