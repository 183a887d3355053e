package api

import "net/url"

// Query renders values as a query string with a leading "?", or an empty
// string when there is nothing to encode. Empty values are dropped so
// optional filters do not clutter the URL.
func Query(values url.Values) string {
	filtered := url.Values{}
	for k, vs := range values {
		for _, v := range vs {
			if v != "" {
				filtered.Add(k, v)
			}
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	return "?" + filtered.Encode()
}
