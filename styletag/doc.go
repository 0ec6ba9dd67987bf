// Package styletag recognises inline style markup inside text.
//
// Tags use square brackets: [color=#f00]red[/color], [bgcolor=#222222],
// [b], [i], [u] and [s]. Anything that does not parse as a known tag is
// plain text; the scanner never reports errors.
package styletag
