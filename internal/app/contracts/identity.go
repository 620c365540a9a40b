package contracts

import "context"

type TokenState int

const (
	TokenValid TokenState = iota
	TokenRevoked
	TokenInvalid
)

func (s TokenState) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenRevoked:
		return "revoked"
	default:
		return "invalid"
	}
}

// RevocationChecker verifies a signature-verified token has not been
// revoked since issuance. Lookup failures surface as TokenInvalid with
// a non-nil error; callers must treat anything but TokenValid as deny.
type RevocationChecker interface {
	Check(ctx context.Context, rawToken string) (TokenState, error)
}
