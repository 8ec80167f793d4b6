package domain

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

// CallerIdentity is the authenticated principal behind a request.
type CallerIdentity struct {
	ID   string
	Role Role
}

type Party int

const (
	PartyNone Party = iota
	PartyCustomer
	PartyProfessional
	PartyAdmin
)

func (p Party) String() string {
	switch p {
	case PartyCustomer:
		return "customer"
	case PartyProfessional:
		return "professional"
	case PartyAdmin:
		return "admin"
	}
	return "none"
}
