package export

import "github.com/wxarchive/wxexport/internal/store"

// GroupByTalker partitions a time-ordered message sequence into
// per-conversation slices keyed by talker. Relative order within each
// group matches the input order; no additional sorting happens here.
func GroupByTalker(msgs []store.RawMessage) map[string][]store.RawMessage {
	groups := make(map[string][]store.RawMessage)
	for _, m := range msgs {
		groups[m.Talker] = append(groups[m.Talker], m)
	}
	return groups
}
