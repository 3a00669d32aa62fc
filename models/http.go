package models

// HTTP headers shared by the server handlers and the client adapter.
const (
	HeaderAuthorization = "Authorization"

	// HeaderSessionCharacterID carries the character the caller is currently
	// playing. Absent or empty means no session character.
	HeaderSessionCharacterID = "X-Session-Character-ID"
)
