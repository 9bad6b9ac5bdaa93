// Package attr models element attributes and turns them into markup.
//
// A Set is an ordered list of name/value pairs. Serialize renders it as
// the fragment that goes between a tag name and its closing bracket:
//
//	attr.New("class", "card", "id", "main")  →  ` class="card" id="main"`
//
// Value policy:
//
//   - nil and false are omitted entirely
//   - true renders as a bare attribute name (` disabled`)
//   - strings, integers, floats and fmt.Stringers render as escaped
//     quoted values
//   - anything else is a malformed attribute and fails immediately
//
// Cache memoizes Serialize keyed by a structural fingerprint of the set,
// so equal sets built independently share one entry. It is bounded with
// LRU eviction and safe for concurrent use; Default is the process-wide
// instance the render engine uses unless told otherwise.
package attr
