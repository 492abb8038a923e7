package crm

import "net/http"

// addHeaders sets headers expected by the CRM API
func (c *Client) addHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	// listings are in russian, ask for it first
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}
