package identity

// RevokedTokenSetKey is the identity provider's revocation set. Members
// are token ids (jti claims) revoked since issuance.
const RevokedTokenSetKey = "identity:revoked_tokens"
