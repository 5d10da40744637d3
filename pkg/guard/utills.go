package guard

// IsUnordered reports whether v does not compare equal to itself, which is
// only true for IEEE-754 NaN values. Ordering guards fail such values.
func IsUnordered[T Ordered](v T) bool {
	return v != v
}

// MessageOf returns the verbatim text of err, "" when err is nil.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
