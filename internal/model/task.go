package model

// Task is one user-owned to-do item. ID is the document key assigned by the
// persistence layer at creation; ID and OwnerID are immutable thereafter.
type Task struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreatedAtUtc string `json:"createdAtUtc"`
}

// Task field length limits.
const (
	TaskNameMaxLen        = 30
	TaskDescriptionMaxLen = 250
)

// Validate checks the record shape and returns every violation found.
// requireID is false for transient records that have not been assigned a
// document key yet; a present ID is still checked either way.
func (t Task) Validate(requireID bool) Violations {
	c := &collector{}
	checkOpaqueID(c, "id", t.ID, requireID)
	checkOpaqueID(c, "ownerId", t.OwnerID, true)
	checkText(c, "name", t.Name, TaskNameMaxLen)
	checkText(c, "description", t.Description, TaskDescriptionMaxLen)
	checkTimestamp(c, "createdAtUtc", t.CreatedAtUtc)
	return c.violations
}
