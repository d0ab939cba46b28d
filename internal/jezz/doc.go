// Package jezz is the region-partitioning and collision engine behind Jezzball.
//
// A field rectangle is kept as a set of disjoint open regions. Balls bounce
// inside the region that contains them, a capture line grows from a chosen
// point until it reaches both edges of its region, and the region is then
// split in two with every half that holds no ball dropped as captured.
// The Controller sequences one tick of all of this and decides when a level
// is won or the game is lost.
//
// The package is pure: no terminal, audio or storage dependencies, and every
// result is a deterministic function of the seed and the inputs.
package jezz
