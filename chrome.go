package recaptcha

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// NewBrowser - launches Chrome and connects to it. Headless unless visible
// is set, optional proxy in host:port form.
func NewBrowser(visible bool, proxy string) (*rod.Browser, error) {
	l := launcher.New().Headless(!visible)

	if proxy != "" {
		l = l.Proxy(proxy)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, err
	}

	return rod.New().ControlURL(u).MustConnect().NoDefaultDevice(), nil
}

// NewPage - creates a page with the stealth evasions installed. The widget
// probes for automation, plain pages get flagged almost immediately.
func NewPage(browser *rod.Browser) (*rod.Page, error) {
	return stealth.Page(browser)
}
