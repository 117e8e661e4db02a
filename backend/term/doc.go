// Package term renders figures as braille text for terminal previews.
//
// Each terminal cell holds a 2x4 grid of micro-pixels encoded as one braille
// rune (U+2800 + dot mask), so a W x H cell target has 2W x 4H plotting
// resolution. Lines are drawn one micro-pixel wide; markers and bars are
// filled. Each cell takes the color of the last batch drawn into it.
//
// Importing the package registers it under backend.BackendTerm. Model wraps
// the backend in a bubbletea program for interactive viewing:
//
//	if err := term.Run(fig, "demo"); err != nil {
//		log.Fatal(err)
//	}
package term
