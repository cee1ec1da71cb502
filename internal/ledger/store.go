package ledger

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Op is a props operator token.
type Op string

const (
	OpIncr Op = "++"
	OpDecr Op = "--"
	OpAdd  Op = "+="
	OpSub  Op = "-="
)

// maxHistory bounds the per-target event log.
const maxHistory = 50

// Event records a single applied mutation for a target.
type Event struct {
	Timestamp time.Time
	Property  string
	Op        Op
	Value     int // value after the mutation
}

// Entry is one leaderboard row: a target with its per-property values.
type Entry struct {
	Target string
	Props  map[string]int
	Total  int
}

// Store holds the props ledger: target -> property -> value. Unknown
// pairs read as 0. Updates on the same target are serialized by a
// per-target mutex so concurrent read-modify-writes never lose a step.
type Store struct {
	mu      sync.RWMutex
	props   map[string]map[string]int
	history map[string][]Event
	locks   *keyedMutex
}

func NewStore() *Store {
	return &Store{
		props:   make(map[string]map[string]int),
		history: make(map[string][]Event),
		locks:   newKeyedMutex(),
	}
}

// ParseOp validates an operator token.
func ParseOp(token string) (Op, error) {
	switch op := Op(token); op {
	case OpIncr, OpDecr, OpAdd, OpSub:
		return op, nil
	default:
		return "", ErrUnknownOp
	}
}

// delta translates an operator and its operand into a signed step.
func delta(op Op, operand string) (int, error) {
	switch op {
	case OpIncr:
		return 1, nil
	case OpDecr:
		return -1, nil
	case OpAdd, OpSub:
		if operand == "" {
			return 0, ErrMissingOperand
		}
		n, err := strconv.Atoi(operand)
		if err != nil {
			return 0, ErrMissingOperand
		}
		if op == OpSub {
			return -n, nil
		}
		return n, nil
	default:
		return 0, ErrUnknownOp
	}
}

// Apply mutates (target, property) by op and returns the new value.
// Invalid input leaves the ledger untouched. Values are unbounded and
// may go negative.
func (s *Store) Apply(target, property string, op Op, operand string) (int, error) {
	step, err := delta(op, operand)
	if err != nil {
		return 0, err
	}

	s.locks.Lock(target)
	defer s.locks.Unlock(target)

	s.mu.Lock()
	defer s.mu.Unlock()

	props, ok := s.props[target]
	if !ok {
		props = make(map[string]int)
		s.props[target] = props
	}
	value := props[property] + step
	props[property] = value

	events := append(s.history[target], Event{
		Timestamp: time.Now(),
		Property:  property,
		Op:        op,
		Value:     value,
	})
	if len(events) > maxHistory {
		events = events[len(events)-maxHistory:]
	}
	s.history[target] = events

	return value, nil
}

// Read returns the current value for (target, property) without
// mutating anything. Unknown pairs read 0.
func (s *Store) Read(target, property string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props[target][property]
}

// Props returns a copy of all property values for a target.
func (s *Store) Props(target string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props := make(map[string]int, len(s.props[target]))
	for property, value := range s.props[target] {
		props[property] = value
	}
	return props
}

// History returns the recorded events for a target, oldest first.
func (s *Store) History(target string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, len(s.history[target]))
	copy(events, s.history[target])
	return events
}

// Leaderboard returns one entry per known target, sorted by total
// descending, ties broken by target name.
func (s *Store) Leaderboard() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.props))
	for target, props := range s.props {
		entry := Entry{
			Target: target,
			Props:  make(map[string]int, len(props)),
		}
		for property, value := range props {
			entry.Props[property] = value
			entry.Total += value
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Target < entries[j].Target
	})
	return entries
}
