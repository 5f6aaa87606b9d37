package remote

// Clean returns a copy of v with every key whose value is absent (nil)
// removed, recursively through maps and slices. The backing store rejects
// documents containing absent-value fields, so every outgoing write passes
// through here. Clean never mutates its input and is idempotent.
func Clean(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = Clean(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clean(item)
		}
		return out
	default:
		return v
	}
}
