// Package keypath parses and renders the textual paths that address
// values inside a config document.
//
// A path is a key segment followed by any mix of dotted keys and
// bracketed indices:
//   - network.timeout
//   - servers[0].host
//   - a.b[2][0].c
//
// # Usage
//
//	p, err := keypath.Parse("servers[0].host")
//
//	// Segments are a closed pair of variants.
//	switch s := p[0].(type) {
//	case keypath.Key:
//	case keypath.Index:
//	}
//
//	// String renders the canonical form; parsing it back yields p.
//	p.String() // "servers[0].host"
package keypath
