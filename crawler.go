package recaptcha

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
)

// frameText - snapshots the frame HTML and returns the trimmed text of the
// first element matching the selector. Empty string on any failure.
func frameText(frame *rod.Page, selector string) string {
	html, err := frame.HTML()
	if err != nil {
		return ""
	}

	crawler, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(crawler.Find(selector).First().Text())
}
