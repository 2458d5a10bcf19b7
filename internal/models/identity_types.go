package models

// Identity is the signed-in user record. Sign-in either produces a fully
// populated identity or none at all; there is no partially-known user.
type Identity struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// Key returns the identifier used to stamp orders and reviews: the email when
// present, otherwise the subject id.
func (id Identity) Key() string {
	if id.Email != "" {
		return id.Email
	}
	return id.Subject
}
