// Package textlayer turns the positioned text runs of a PDF's content
// stream into ordered blocks suitable for region queries.
//
// The underlying engine reports individual runs with baselines in the PDF
// bottom-left convention. [Blocks] buckets them into lines, merges
// vertically adjacent lines into blocks, and converts the result to the
// top-left convention that region searches (such as caption location) are
// expressed in. [InRegion] filters blocks against a clip rectangle in
// reading order.
package textlayer
