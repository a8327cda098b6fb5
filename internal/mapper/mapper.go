package mapper

// Mapper converts between a persistence model M and a domain entity E.
// The generic repository is parameterized over one of these so that every
// entity type shares the same data-access code.
type Mapper[M any, E any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
}
