// Package theme resolves key colors.
//
// A Palette holds the nine named colors of a keyboard. ColorsFor picks the
// face, shadow, border and text colors of a key from its type, plus the
// colors it switches to while pressed.
package theme
