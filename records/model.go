package records

/*
Model is the caller-declared expected shape of a payload or response body: a
structured record type, or a flat list of one. A Model is resolved once, at
construction, and is immutable for its lifetime — the record type it names is
normalised to the validating family here rather than at (de)serialise time.

A nil *Model means "use the codec's default container".
*/
type Model struct {
	elem *Type
	list bool
}

// ModelOf declares a single-record model from a record type or instance.
func ModelOf(typeOrValue interface{}) (*Model, error) {
	elem, err := Normalise(typeOrValue)
	if err != nil {
		return nil, err
	}
	return &Model{elem: elem}, nil
}

// ListOf declares a list-of-records model from the element's type or an
// instance of it.
func ListOf(typeOrValue interface{}) (*Model, error) {
	elem, err := Normalise(typeOrValue)
	if err != nil {
		return nil, err
	}
	return &Model{elem: elem, list: true}, nil
}

// IsList reports whether the model declares a list of records rather than a
// single one.
func (model *Model) IsList() bool {
	return model.list
}

// Elem returns the validating record type the model declares.
func (model *Model) Elem() *Type {
	return model.elem
}
