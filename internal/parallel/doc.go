// Package parallel runs independent row bands of a composite on a pool of
// worker goroutines.
//
// A destination rectangle is split into horizontal bands of whole rows.
// Bands never share destination pixels, so each can be composited by its own
// set of scanline iterators without synchronisation beyond waiting for the
// last band to finish.
//
// Thread safety: WorkerPool is safe for concurrent use.
package parallel
