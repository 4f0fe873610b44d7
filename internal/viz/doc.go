// Package viz renders running worlds in the terminal.
//
// The live view is a Bubble Tea program built from:
//
//   - [Canvas]: braille pixel canvas for high-density terminal drawing
//   - [Camera]: perspective projection with a spring-smoothed look target
//   - [Model]: interactive viewer for one scene
//   - [RunPicker]: scene selection menu
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Rebuild the scene
//	[ ]   - Replay through recent frames
//	x/y   - Orbit the camera, +/- zoom
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
