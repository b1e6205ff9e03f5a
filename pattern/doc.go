// Package pattern reads and writes on/off grids as plain text.
//
// A pattern file has one line per grid row. A blank glyph (space by
// default) is an off cell and every other user-perceived character is an
// on cell:
//
//	X X
//	 X
//	X X
//
// Rows shorter than the longest row are padded with off cells. Blank
// lines, including trailing ones, are all-off rows; the newline that ends
// the last row does not start another one.
//
// Input may be UTF-8 or UTF-16 with a byte order mark. Text is normalized
// to NFC and split into grapheme clusters, so a letter with a combining
// accent or an emoji sequence occupies one cell.
package pattern
