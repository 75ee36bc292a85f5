// Package viz renders the expanding particle field live in the
// terminal. A braille-cell canvas gives 2x4 sub-pixels per character;
// the bubbletea model drives the frame loop, routes key presses to the
// control surface, and advances the engine between frames.
//
// The renderer only ever reads state views from the store; zoom and
// dot size are render configuration and never reach simulation state.
package viz
