package scope

// Payload carries the verified identity claims of a request.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	ID        string `json:"jti,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

// Manager verifies a raw token into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadKey struct{}
type scopeKey struct{}
