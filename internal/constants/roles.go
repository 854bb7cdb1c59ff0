package constants

import (
	"database/sql/driver"
	"fmt"
)

// StaffRole mirrors the role column on users
type StaffRole string

const (
	RoleStaff   StaffRole = "staff"
	RoleManager StaffRole = "manager"
	RoleAdmin   StaffRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r StaffRole) String() string { return string(r) }

// CanManageChannels reports whether the role may operate the channel manager.
func (r StaffRole) CanManageChannels() bool {
	return r == RoleManager || r == RoleAdmin
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *StaffRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = StaffRole(v)
	case []byte:
		*r = StaffRole(v)
	default:
		return fmt.Errorf("StaffRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r StaffRole) Value() (driver.Value, error) { return string(r), nil }
