package service

// TokenGenerator produces opaque bearer token values.
// Values are drawn from a cryptographically secure source; uniqueness
// rests on their entropy rather than on retries.
type TokenGenerator interface {
	Generate() (string, error)
}
