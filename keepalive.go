package taskgroup

import "sync"

// busy references the state of every group with outstanding tasks. The state
// is embedded in its Group, so this interior pointer keeps the whole Group
// reachable after callers have dropped it, until its last task completes.
// Entries must be fully removed on unpin; sync.Map may keep deleted keys.
var busy = struct {
	sync.Mutex
	states map[*state]struct{}
}{states: make(map[*state]struct{})}

func pin(s *state) {
	busy.Lock()
	busy.states[s] = struct{}{}
	busy.Unlock()
}

func unpin(s *state) {
	busy.Lock()
	delete(busy.states, s)
	busy.Unlock()
}

func pinned(s *state) bool {
	busy.Lock()
	defer busy.Unlock()
	_, ok := busy.states[s]
	return ok
}
