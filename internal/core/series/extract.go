package series

// Request names the words and categories to pull out of a table
// Words order becomes trace order; categories are walked in the given order for every word
type Request struct {
	Words      []string
	Categories []string
}

// Series is one line on a chart, one value per axis bucket
type Series struct {
	Word     string `json:"word"`
	Category string `json:"category"`
	Values   Values `json:"values"`
}

// Result is the output of one extraction
type Result struct {
	Labels   []string `json:"labels"`
	Series   []Series `json:"series"`
	NotFound []string `json:"not_found"`
}

// Extract builds aligned series for every requested (word, category) pair
// words missing from the table are reported in NotFound instead of failing
// every series has exactly len(t.Labels()) values; missing columns are filled by policy
// empty cells of existing columns pass through as absent
func Extract[B comparable](t *Table[B], req Request, policy MissingPolicy) Result {
	if policy == nil {
		policy = ZeroFill
	}
	res := Result{
		Labels:   t.Labels(),
		Series:   []Series{},
		NotFound: []string{},
	}

	for _, word := range req.Words {
		r, ok := t.rowIdx[word]
		if !ok {
			res.NotFound = append(res.NotFound, word)
			continue
		}
		for _, cat := range req.Categories {
			vals := make(Values, len(t.axis))
			for i, b := range t.axis {
				v, ok := t.lookupRow(r, b, cat)
				if !ok {
					v = policy.Fill()
				}
				vals[i] = v
			}
			res.Series = append(res.Series, Series{Word: word, Category: cat, Values: vals})
		}
	}
	return res
}
