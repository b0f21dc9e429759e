package model

// Genre is a free-text musical category label shared across venues and
// artists.  Labels are unique; reconciliation upserts against the label
// instead of inserting blindly.
type Genre struct {
	ID    uint64 // genres.id
	Label string // genres.label
}
