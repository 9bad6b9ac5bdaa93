// Package escape converts arbitrary text into HTML-safe text.
//
// Exactly five bytes are rewritten: & < > " and ', into &amp; &lt; &gt;
// &quot; and &#39;. Every other byte, including multi-byte UTF-8
// sequences, passes through untouched. The same escaping is used for
// element content and attribute values.
//
// Most text on a page contains none of the five bytes, so the package is
// built around a fast scan: Index finds the first escapable byte by
// testing eight bytes at a time (SWAR byte-class comparison) and falls
// back to a byte loop for the tail and on 32-bit platforms. When Index
// reports nothing, String returns its argument without copying.
package escape
