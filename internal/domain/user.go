package domain

// User mirrors the backend's user representation. The backend owns the
// shape; the client never mutates it.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// IsTeacher reports whether the user holds the teacher role.
func (u *User) IsTeacher() bool {
	return u != nil && u.Role == RoleTeacher
}

// IsStudent reports whether the user holds the student role.
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}
