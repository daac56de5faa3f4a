package model

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account that can log in to the vulnerability manager
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanWrite returns true if the user may create, update or delete records
func (u *User) CanWrite() bool {
	return u.Role == RoleAdmin
}

// CanRead returns true if the user may view records
func (u *User) CanRead() bool {
	return u.Role == RoleAdmin || u.Role == RoleUser
}
