package keynav

import (
	"time"

	"github.com/ja-he/docnav/internal/input"
)

// SequenceTimeout is how long the second key of a chord is awaited.
const SequenceTimeout = 1000 * time.Millisecond

type sequenceState struct {
	pending rune
	cancel  func()
	// token identifies the current arming, so that a late timer callback of an
	// earlier arming cannot clear a newer chord.
	token uint64
}

func (s *sequenceState) awaiting() bool {
	return s.pending != 0
}

func (i *Interpreter) armSequence(first rune) {
	i.seq.token++
	token := i.seq.token
	i.seq.pending = first
	i.seq.cancel = i.host.AfterFunc(SequenceTimeout, func() {
		if i.seq.token != token || !i.seq.awaiting() {
			return
		}
		i.log.Debug().Str("pending", string(i.seq.pending)).Msg("chord expired")
		i.resetSequence()
	})
	i.log.Trace().Str("pending", string(first)).Msg("chord armed")
}

// completeSequence evaluates the second key of a chord. A key that does not
// complete the chord is spent: it triggers nothing, but is not consumed.
func (i *Interpreter) completeSequence(k input.Key) (consumed bool) {
	first := i.seq.pending
	if i.seq.cancel != nil {
		i.seq.cancel()
	}
	i.resetSequence()

	if k != input.Rune(first) {
		i.log.Debug().Str("pending", string(first)).Str("key", k.ToDebugString()).Msg("chord mismatch")
		return false
	}

	prev, next := i.host.PaginationTargets()
	target := next
	if first == keyPrev.Ch {
		target = prev
	}
	if target == nil {
		i.log.Debug().Str("chord", string([]rune{first, first})).Msg("no target for chord")
		return true
	}

	i.log.Debug().Str("chord", string([]rune{first, first})).Str("target", target.Describe()).Msg("activating")
	i.host.Activate(target)
	return true
}

func (i *Interpreter) resetSequence() {
	i.seq.token++
	i.seq.pending = 0
	i.seq.cancel = nil
}
