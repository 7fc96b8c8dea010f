package ports

// TokenIssuer mints signed session tokens for an authenticated admin.
type TokenIssuer interface {
	IssueToken(username string) (string, error)
}

// TokenVerifier checks a session token's signature and expiry, returning
// the embedded username. Failures are domain.ErrTokenInvalid or
// domain.ErrTokenExpired.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}
