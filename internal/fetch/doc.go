// Package fetch downloads the source page for the extractor.
//
// A Fetcher performs exactly one GET per call. Only a 200 response is
// accepted; any other status is reported as ErrUnexpectedStatus, which callers
// treat as a soft failure. Transport errors are returned unchanged.
//
// # Transport
//
// NewHTTPClient builds the client. When a SOCKS5 proxy address is given, all
// connections are dialed through it using golang.org/x/net/proxy.
// CheckProxy verifies such a proxy answers a SOCKS5 greeting before use.
//
// # Wikitext
//
// The default source is the MediaWiki "action=edit" page, which wraps the raw
// wikitext in a textarea. With WithWikitext(true) the Fetcher returns only the
// contents of that textarea, parsed with goquery. The raw body is returned when
// the textarea is missing.
//
// # Usage
//
//	client, err := fetch.NewHTTPClient(60*time.Second, "")
//	f := fetch.NewFetcher(client, fetch.WithUserAgent("devicemodels"))
//	text, err := f.Fetch(ctx, "https://www.theiphonewiki.com/w/index.php?title=Models&action=edit")
package fetch
