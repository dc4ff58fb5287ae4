// Package vision implements the heuristic image-analysis half of the
// pipeline: the edge-gradient stage, the contour tracer, and the planar
// surface detector.
//
// Everything here is a pure, synchronous computation over in-memory
// buffers. Nothing blocks, nothing retries, and nothing is shared
// between calls, so independent photos can be processed concurrently
// without coordination. Timeouts around the external services that
// supply photos or edge maps belong to the caller.
//
// The algorithms are deterministic heuristics tuned for photographs of
// paper on a desk, not general computer vision. Their policy knobs live
// in Params rather than in the code.
package vision
