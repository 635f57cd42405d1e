package api

import (
	"fmt"
	"strings"
)

// placeholderImage stands in for entities with no media rows. It is served
// as-is and never rewritten.
const placeholderImage = "https://placehold.co/600x400/1f2937/FFFFFF?text=No+Image"

// Render sizes requested from the image host per display context
const (
	thumbnailWidth   = 600
	thumbnailQuality = 80
	portraitWidth    = 400
	portraitQuality  = 85
	logoWidth        = 300
	logoQuality      = 90
	fullWidth        = 1920
	fullQuality      = 90
)

// optimizeImageURL asks the image host for a resized rendition. Only bare
// URLs on the known host get parameters appended; anything already carrying
// a query string, and the placeholder, pass through unchanged so a URL can
// never be rewritten twice.
func optimizeImageURL(url string, width, quality int) string {
	if url == "" || strings.Contains(url, "placehold.co") {
		return url
	}
	if strings.Contains(url, "supabase.co") && !strings.Contains(url, "?") {
		return fmt.Sprintf("%s?width=%d&resize=contain&quality=%d", url, width, quality)
	}
	return url
}
