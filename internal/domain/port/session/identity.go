package session

import "github.com/amirhossein-jamali/wager-profile/internal/domain/entity"

// IdentitySource is an observable "current identity" scoped to one session
type IdentitySource interface {
	// Current returns the signed-in identity, or nil
	Current() *entity.Identity
	// Subscribe registers fn to be called after every identity change.
	// The returned function removes the subscription.
	Subscribe(fn func(*entity.Identity)) (unsubscribe func())
}

// IdentityHolder is an IdentitySource that can be updated
type IdentityHolder interface {
	IdentitySource
	// Set replaces the current identity; nil signs out
	Set(identity *entity.Identity)
}
