// Package collection combines the bundled seed records with the persisted
// user records into one logical collection.
package collection

import "github.com/clovehq/momtrack/internal/model"

// Merge unions seed and persisted records keyed by identifier. Persisted
// entries are applied after seed entries, so an identifier collision
// resolves in favor of the user-edited version; the surviving order is
// first-seen insertion order of the identifiers. Records without an
// identifier are dropped. Pure: neither input slice is mutated.
func Merge(seed, persisted []model.RawMeeting) []model.RawMeeting {
	index := make(map[string]int, len(seed)+len(persisted))
	order := make([]model.RawMeeting, 0, len(seed)+len(persisted))

	add := func(m model.RawMeeting) {
		if m.ID == "" {
			return
		}
		if i, ok := index[m.ID]; ok {
			order[i] = m
			return
		}
		index[m.ID] = len(order)
		order = append(order, m)
	}

	for _, m := range seed {
		add(m)
	}
	for _, m := range persisted {
		add(m)
	}
	return order
}
