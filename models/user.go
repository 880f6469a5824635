package models

import "time"

// User roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleVendor     = "vendor"
	RoleStaff      = "staff"
	RolePublic     = "public"
)

// User is an operator account. VendorID is set for vendors and their staff.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	VendorID     string    `bson:"vendor_id,omitempty" json:"vendor_id,omitempty"`
	StaffID      string    `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AuthSession is the authenticated caller, built once per request by the auth
// middleware and passed down explicitly.
type AuthSession struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	VendorID string `json:"vendorId,omitempty"`
}

// IsSuperAdmin reports whether the session may see every vendor's data.
func (s AuthSession) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}
