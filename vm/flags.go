package vm

// compareFields compares the (L:R) field of a and b as sign-magnitude
// integers, returning the resulting CompIndicator. Per spec.md §9's frozen
// rule, two zero-magnitude fields compare Equal regardless of differing
// sign cells ("minus zero equals plus zero"), generalized here to any
// field width rather than only the whole-word case spec.md's open
// question names.
func compareFields(a, b Word, f FieldSpec) CompIndicator {
	fa := a.ReadField(f)
	fb := b.ReadField(f)

	if fa.IsZero() && fb.IsZero() {
		return CompEqual
	}

	va := fa.ToInt64()
	vb := fb.ToInt64()

	switch {
	case va < vb:
		return CompLess
	case va > vb:
		return CompGreater
	default:
		return CompEqual
	}
}
