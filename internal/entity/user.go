package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type RoleName string

const (
	RoleAdmin        RoleName = "admin"
	RoleReceptionist RoleName = "receptionist"
)

type UserRole struct {
	Name RoleName `json:"name"`
}

type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      UserRole
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s %s)", u.ID, u.FirstName, u.LastName)
}

// Patient is the subset of a patient record the billing core snapshots at
// invoice issue time.
type Patient struct {
	ID      uuid.UUID
	Name    string
	TaxID   string
	Address string
	Email   string
}
