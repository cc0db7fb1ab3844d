package models

// Outfit is a saved grouping of items, typically one top and one bottom.
type Outfit struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// ItemIDSet reports the set of item identifiers this outfit is composed
// of. Outfit equality for "already saved" checks is by identifier set,
// not by record identity.
func (o Outfit) ItemIDSet() map[int]bool {
	ids := make(map[int]bool, len(o.Items))
	for _, item := range o.Items {
		ids[item.ID] = true
	}
	return ids
}

// HasExactItems reports whether the outfit consists of exactly the given
// item identifiers.
func (o Outfit) HasExactItems(itemIDs []int) bool {
	set := o.ItemIDSet()
	if len(set) != len(uniqueIDs(itemIDs)) {
		return false
	}
	for _, id := range itemIDs {
		if !set[id] {
			return false
		}
	}
	return true
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	var out []int
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
