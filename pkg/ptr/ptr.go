package ptr

// Ptr returns a pointer to v. Handy for optional fields in request models.
func Ptr[T any](v T) *T {
	return &v
}
