package users

// Role is the two-tier access level attached to every account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is one account record. Username and Email are each unique across the
// directory; Email doubles as the identity key tokens are bound to.
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// ProfilePatch carries the optional fields of a profile update. Nil means
// "leave unchanged".
type ProfilePatch struct {
	Username *string
	Password *string
	Role     *Role
}
