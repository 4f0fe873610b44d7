// Package analysis inspects recorded trajectories.
//
// Functions operate on plain sample slices so they work equally on live
// frames and on runs loaded back from storage:
//
//   - [Spectrum] and [DominantPeriod]: frequency content of one coordinate
//   - [Summarize]: descriptive statistics for a series
//   - [Separation] and [DivergenceRate]: how fast two runs drift apart
//
// # Units
//
// Sample spacing is passed in the same unit the engine steps in, so
// frequencies come out in cycles per that unit and periods in that unit.
package analysis
