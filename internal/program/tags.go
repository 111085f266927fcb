package program

const (
	TagRecorded        = "Recorded"
	TagNotRecorded     = "Not Recorded"
	TagLivestreamed    = "Livestreamed"
	TagNotLivestreamed = "Not Livestreamed"
)

// ClassifyTags maps program tags to recorded/streamed status.
// Each axis is decided independently by exact tag membership; the positive tag wins
// over its negation, and neither present yields StatusUnknown.
func ClassifyTags(tags []string) (recorded, streamed Status) {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}

	return axis(set, TagRecorded, TagNotRecorded), axis(set, TagLivestreamed, TagNotLivestreamed)
}

func axis(set map[string]bool, yes, no string) Status {
	switch {
	case set[yes]:
		return StatusYes
	case set[no]:
		return StatusNo
	default:
		return StatusUnknown
	}
}
