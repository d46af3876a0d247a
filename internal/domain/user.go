package domain

// Identity is the authenticated caller as described by the identity provider's token
type Identity struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
	Token    string   `json:"-"`
}

// HasRole reports whether the identity carries role
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
