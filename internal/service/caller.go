package service

import "github.com/google/uuid"

// Caller is the authenticated principal handed down by the transport
// layer. Services receive it explicitly on every mutating operation
// instead of reading ambient request state.
type Caller struct {
	UserId    uuid.UUID
	CompanyId uuid.UUID
}
