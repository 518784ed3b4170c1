// Package shapes implements the per-shape dimension codec: the mapping
// between internal geometry fields and external document fields, with
// defaults for missing values. All functions are total and side-effect free.
package shapes

// num reads a numeric field from an external dimensions map, falling back to
// def when the key is absent or not a number. JSON decoding yields float64,
// but hand-built maps may carry int.
func num(ext map[string]any, key string, def float64) float64 {
	v, ok := ext[key]
	if !ok {
		return def
	}

	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}

	return def
}

// nums reads a numeric array field, returning nil when absent or malformed.
func nums(ext map[string]any, key string) []float64 {
	v, ok := ext[key]
	if !ok {
		return nil
	}

	switch arr := v.(type) {
	case []float64:
		out := make([]float64, len(arr))
		copy(out, arr)

		return out
	case []any:
		out := make([]float64, 0, len(arr))

		for _, e := range arr {
			switch n := e.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			default:
				out = append(out, 0)
			}
		}

		return out
	}

	return nil
}

// at returns arr[i], or 0 when the index is out of range.
func at(arr []float64, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}

	return arr[i]
}

// orDefault substitutes def for a zero value.
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}

	return v
}
