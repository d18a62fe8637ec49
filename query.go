package flywheel

// Each calls fn for every entity holding a T component, in dense pool order.
// fn must not add or remove T components while iterating.
func Each[T any](m *Manager, fn func(e Entity, value *T)) {
	p := PoolOf[T](m.components)
	if p == nil {
		return
	}
	values, owners := p.All(), p.Owners()
	for i := range values {
		fn(owners[i], &values[i])
	}
}

// Each2 calls fn for every entity holding both an A and a B component. It
// walks the A pool and looks B up through its sparse index, so pass the rarer
// component as A. fn must not add or remove A or B components.
func Each2[A, B any](m *Manager, fn func(e Entity, a *A, b *B)) {
	pa, pb := PoolOf[A](m.components), PoolOf[B](m.components)
	if pa == nil || pb == nil {
		return
	}
	values, owners := pa.All(), pa.Owners()
	for i := range values {
		if b := pb.Get(owners[i]); b != nil {
			fn(owners[i], &values[i], b)
		}
	}
}
