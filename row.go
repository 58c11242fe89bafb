package barchart

// Row is one record of the dataset. Name is the key used to join rows to
// their bar and label.
type Row struct {
	Name     string
	Value    float64
	Category string
}

func CategoryRow(name string, value float64, category string) Row {
	return Row{
		Name:     name,
		Value:    value,
		Category: category,
	}
}

// Names returns the distinct names of rows in insertion order.
func Names(rows []Row) []string {
	return distinct(rows, func(r Row) string { return r.Name })
}

// Categories returns the distinct categories of rows in first-seen order.
func Categories(rows []Row) []string {
	return distinct(rows, func(r Row) string { return r.Category })
}

func distinct(rows []Row, get func(Row) string) []string {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	for _, r := range rows {
		v := get(r)
		if _, ok := seen[v]; ok {
			continue
		}
		list = append(list, v)
		seen[v] = empty
	}
	return list
}
