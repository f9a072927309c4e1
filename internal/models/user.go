package models

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// CanViewAnalytics is the single capability predicate for the analytics
// surface. Every protected view consults this instead of re-deriving
// role checks per screen.
func CanViewAnalytics(role Role) bool {
	return role == RoleInstructor || role == RoleAdmin
}

// User is the canonical identity shape. The login wire format of an older
// prototype carried both user_id/id and name/full_name variants; this
// codebase serves exactly one shape and clients consume it as-is.
type User struct {
	ID                 string     `json:"id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone,omitempty"`
	Role               Role       `json:"role"`
	EnrolledCourseIDs  []string   `json:"enrolled_course_ids"`
	ProgressPercentage int        `json:"progress_percentage"`
	Avatar             string     `json:"avatar,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
}

// PublicUser is the projection returned by the auth exchange.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Enrolled reports whether the user is already enrolled in the course.
func (u *User) Enrolled(courseID string) bool {
	for _, id := range u.EnrolledCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` // accepted but never verified (demo credentials)
}

// LoginResponse mirrors the original mock auth server's wire shape.
type LoginResponse struct {
	OK    bool       `json:"ok"`
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

type MeResponse struct {
	OK   bool  `json:"ok"`
	User *User `json:"user"`
}

// AuthErrorResponse is the failure shape of the auth endpoints.
type AuthErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}
