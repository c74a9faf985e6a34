package blogs

import "blogapi/internal/entity"

// BlogFilter narrows a blog listing. Zero values mean "no restriction".
type BlogFilter struct {
	AuthorID string
	Status   entity.BlogStatus
}

// CanView reports whether a requester with the given role may see a blog owned by ownerID.
// Admins see everything; everyone else sees only what they authored.
func CanView(role entity.UserRole, ownerID *string, requesterID string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return ownerID != nil && *ownerID == requesterID
}

// ScopeFor is the query form of CanView for the acting user.
func ScopeFor(actor entity.User, status entity.BlogStatus) BlogFilter {
	filter := BlogFilter{Status: status}
	if !actor.IsAdmin() {
		filter.AuthorID = actor.ID
	}
	return filter
}

// Matches applies the filter to a single blog.
func (f BlogFilter) Matches(blog entity.Blog) bool {
	if f.Status != "" && blog.Status != f.Status {
		return false
	}
	if f.AuthorID != "" && !CanView(entity.RoleUser, blog.AuthorID, f.AuthorID) {
		return false
	}
	return true
}
