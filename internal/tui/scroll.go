package tui

type scrollAction int

const (
	scrollNone scrollAction = iota
	scrollUp
	scrollDown
	scrollPageUp
	scrollPageDown
	scrollHome
	scrollEnd
)

// applyScroll moves offset by action and clamps the result to
// [0, max(0, count-page)]. count and page may have changed since the
// offset was last computed.
func applyScroll(offset int, action scrollAction, count, page int) int {
	maxOffset := max(0, count-page)

	switch action {
	case scrollUp:
		offset--
	case scrollDown:
		offset++
	case scrollPageUp:
		offset -= page
	case scrollPageDown:
		offset += page
	case scrollHome:
		offset = 0
	case scrollEnd:
		offset = maxOffset
	}

	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
