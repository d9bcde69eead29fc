package encode

// MustString is String for values known to be encodable, panicking
// otherwise.
func MustString(v any, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
