package models

// Identity is the principal resolved for the current request.
// The zero value is the anonymous (guest) caller.
type Identity struct {
	UserID int64  `json:"id"`
	Login  string `json:"login"`
}

// IsGuest reports whether the identity belongs to an anonymous caller.
func (i Identity) IsGuest() bool {
	return i.UserID == 0
}
