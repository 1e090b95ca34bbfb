package stats

// Slice is one category of a donut chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Distribution holds per-category counts in category declaration order.
// Total is the size of the counted collection, so items whose value is not
// one of the categories still count towards it.
type Distribution struct {
	Slices []Slice `json:"slices"`
	Total  int     `json:"total"`
}

// Count tallies items by the category returned from key. Every category is
// present in the result, zero when absent.
func Count[T any, K ~string](items []T, key func(T) K, categories []K) Distribution {
	slices := make([]Slice, len(categories))
	index := make(map[K]int, len(categories))
	for i, c := range categories {
		slices[i] = Slice{Name: string(c)}
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	for _, it := range items {
		if i, ok := index[key(it)]; ok {
			slices[i].Value++
		}
	}
	return Distribution{Slices: slices, Total: len(items)}
}

// Value returns the count of the named category, 0 when unknown.
func (d Distribution) Value(name string) int {
	for _, s := range d.Slices {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}
