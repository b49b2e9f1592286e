package token

import "time"

// Maker manages the tokens that identify the acting user of a render request.
type Maker interface {
	// CreateToken creates a new token for a specific user and duration.
	CreateToken(userID int64, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid and returns its payload.
	VerifyToken(token string) (*Payload, error)
}
