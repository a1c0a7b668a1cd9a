// Package reader provides the scoped document handle for the text-layer
// side of extraction.
//
// [Open] validates the PDF up front (a corrupt file fails before any
// detection work runs), records the page count, and opens the text layer.
// [Document.TextBlocks] yields a page's ordered text blocks in the
// top-left-origin convention via the textlayer package, and
// [Document.PageHeight] resolves the page's MediaBox height, which
// bridges the two coordinate conventions. The handle must be released
// with [Document.Close] on every exit path; Close is idempotent.
package reader
