package ports

// KeyProvider supplies the token signing key. Key management stays outside
// the core; production wiring backs this with configuration, tests with a
// fixed byte slice.
type KeyProvider interface {
	SigningKey() []byte
}

// TokenService issues and verifies bearer tokens binding a request to a
// username. Verification failures of any kind surface as
// domain.ErrTokenInvalid.
type TokenService interface {
	Issue(username string) (string, error)
	Verify(raw string) (string, error)
}
