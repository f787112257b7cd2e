package codec

// encodingContext carries the rotation counters of a single Encode call.
//
// A fresh context is created at the start of every call and threaded through
// the sentence and word encoders, so the counters can never leak across
// calls or across goroutines sharing one Encoder.
type encodingContext struct {
	spaceMarkerIndex int // next space-marker rotation position (mod 7)
	aRotationIndex   int // next companion letter for standalone "A" (mod 26)
	iRotationIndex   int // next companion letter for standalone "I" (mod 26)
}
