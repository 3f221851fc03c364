// Package render turns a listing into an HTML document.
//
// Render is a pure function of the listing and a SizeFormat. The document is produced
// by html/template, so display names and headings are HTML-escaped, and every link is
// built by Href, which percent-encodes each key segment so keys containing spaces,
// '?' or '#' link back to themselves.
//
// # Rows
//
//   - Parent: "../" linking one level up, when the display prefix has one.
//   - Directory: folder glyph and link, spanning all three columns.
//   - File: file glyph and link, human-readable size, upload time in UTC.
package render
