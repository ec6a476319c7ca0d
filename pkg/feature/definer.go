package feature

// Definer is passed to the function given to Registry.Define.
type Definer struct {
	r       *Registry
	feature *Feature
	err     error
}

// Feature returns the feature that is being defined.
func (d *Definer) Feature() *Feature {
	return d.feature
}

// Enhance adds a contribution to the feature.
// After the first failed call, all further calls are ignored. The error is
// returned by Registry.Define.
func (d *Definer) Enhance(point ExtensionPoint, contribution Contribution) {
	if d.err != nil {
		return
	}

	d.err = d.r.Enhance(d.feature.name, point, contribution)
}

// Define registers a feature and calls fn to add its enhancements.
// fn can be nil.
func (r *Registry) Define(name string, prerequisites []string, fn func(*Definer)) error {
	f, err := r.Register(name, prerequisites...)
	if err != nil {
		return err
	}

	if fn == nil {
		return nil
	}

	d := Definer{r: r, feature: f}
	fn(&d)

	return d.err
}
