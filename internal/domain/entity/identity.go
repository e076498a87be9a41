package entity

// Identity is the authenticated principal supplied by the identity provider.
// It is read-only for this service.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	AvatarURL   string
}

// SameUser reports whether two identities refer to the same principal.
// Two absent identities are considered the same.
func (i *Identity) SameUser(other *Identity) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	return i.ID == other.ID
}
