package ui

import (
	"sync"

	"github.com/rs/zerolog"
)

// CursorLocationRequestHandler takes requests to show the terminal cursor,
// e.g. from the search prompt while it is open.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler decides where (and whether) the terminal cursor is shown.
// The last requester wins; the cursor is hidden when nobody requests it, which
// is the case while reading a page.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	location  *CursorLocation
	requester string

	log zerolog.Logger
}

// NewCursorWrangler creates a new CursorWrangler, with the cursor hidden.
func NewCursorWrangler(controller TextCursorController, logger zerolog.Logger) *CursorWrangler {
	return &CursorWrangler{
		cc:  controller,
		log: logger.With().Str("component", "cursor").Logger(),
	}
}

// Put requests the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.location != nil && w.requester != requesterID {
		w.log.Warn().Str("requester", requesterID).Str("previous", w.requester).Msgf("cursor at %s overwritten with %s", w.location, l)
	}

	w.location = &l
	w.requester = requesterID
}

// Delete withdraws the requester's cursor request.
// Requests by others are left in place.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.location == nil || w.requester != requesterID {
		w.log.Trace().Str("requester", requesterID).Msg("no cursor request to delete")
		return
	}

	w.location = nil
	w.requester = ""
}

// Enact shows or hides the cursor as requested.
// The root pane calls it once per drawn frame.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.location != nil {
		w.cc.ShowCursor(*w.location)
	} else {
		w.cc.HideCursor()
	}
}
