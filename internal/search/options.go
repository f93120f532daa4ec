package search

// Field names a searchable product field.
type Field string

const (
	FieldName           Field = "name"
	FieldKeywords       Field = "keywords"
	FieldCategory       Field = "category"
	FieldSearchableText Field = "searchableText"
	FieldDescription    Field = "description"
)

// Options tunes fuzzy search.
type Options struct {
	// Weights bias ranking toward matches in heavier fields. They are normalised over
	// their sum, so fields that are weighted but never queried still dilute the others.
	Weights map[Field]float64
	// QueryFields are matched against the whole query and against every token.
	QueryFields []Field
	// Threshold is the highest field score that still counts as a match (0 is exact).
	Threshold float64
	// Distance scales the penalty for matches that start late in a field.
	// Zero or less ignores the match location.
	Distance int
	// MinMatchCharLength is the shortest matched span, and pattern, considered.
	MinMatchCharLength int
}

// DefaultOptions returns the storefront's tuning.
func DefaultOptions() Options {
	return Options{
		Weights: map[Field]float64{
			FieldName:           3,
			FieldCategory:       2,
			FieldDescription:    1.5,
			FieldKeywords:       2.5,
			FieldSearchableText: 2,
		},
		QueryFields:        []Field{FieldName, FieldKeywords, FieldSearchableText},
		Threshold:          0.4,
		Distance:           100,
		MinMatchCharLength: 2,
	}
}

func (o Options) normalizedWeights() map[Field]float64 {
	total := 0.0
	for _, w := range o.Weights {
		total += w
	}
	normalized := make(map[Field]float64, len(o.Weights))
	for f, w := range o.Weights {
		if total > 0 {
			normalized[f] = w / total
		}
	}
	return normalized
}
