package models

import "slices"

// Group represents a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// Description is optional free text.
	Description string

	// CreatedBy is the user ID of the group's creator, always its first member.
	CreatedBy string

	// Members is the ordered list of member user IDs.
	// Balance tables are presented in this order.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// NonMembers returns the IDs in ids that are not group members, in input order.
func (g *Group) NonMembers(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if !g.HasMember(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
