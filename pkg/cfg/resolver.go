package cfg

// Resolver is an interface for replacing substrings with a special meaning in strings.
type Resolver interface {
	Resolve(string) (string, error)
}

func resolveSlice(resolver Resolver, in []string, path ...string) error {
	for i, s := range in {
		res, err := resolver.Resolve(s)
		if err != nil {
			return fieldErrorWrap(err, path...)
		}

		in[i] = res
	}

	return nil
}
