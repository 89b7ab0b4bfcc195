package domain

// Patch is a partial update of T. Nil fields are not supplied and leave the
// stored value untouched.
type Patch[T any] interface {
	// Empty reports whether no field is supplied.
	Empty() bool
	// Apply overlays the supplied fields onto t.
	Apply(t *T)
}

func set[V any](dst *V, v *V) {
	if v != nil {
		*dst = *v
	}
}

// setOptional is set for nullable columns; the stored pointer never aliases
// the patch.
func setOptional[V any](dst **V, v *V) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
