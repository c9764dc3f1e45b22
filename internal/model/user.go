package model

// User is an application profile mirrored from the identity provider. ID is
// the provider's subject identifier; all fields are set once at profile
// creation and never updated.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks the record shape and returns every violation found.
func (u User) Validate() Violations {
	c := &collector{}
	c.check(u.ID != "", "id", "must be a non-empty string")
	c.check(u.Email != "" && emailRe.MatchString(u.Email), "email", "must be a valid email address")
	c.check(u.FirstName != "", "firstName", "must be a non-empty string")
	c.check(u.LastName != "", "lastName", "must be a non-empty string")
	return c.violations
}
