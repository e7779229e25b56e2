package store

// sanitizeFilter restricts a caller-supplied filter to an allow-list of
// queryable columns. Unknown keys are silently dropped, not errors, so
// callers cannot probe arbitrary columns.
func sanitizeFilter(allowed []string, filter map[string]any) map[string]any {
	out := make(map[string]any, len(filter))
	for _, key := range allowed {
		if value, ok := filter[key]; ok {
			out[key] = value
		}
	}
	return out
}
