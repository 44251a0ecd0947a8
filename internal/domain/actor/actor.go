package actor

// Role names the three account types. Every protected operation receives an
// Actor resolved once at token verification; authorization checks never go
// back to the database to rediscover who is calling.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

type Actor struct {
	ID   uint
	Role Role
}

// Allowed is the authorization predicate: true when the actor's role is in
// the allowed set.
func (a Actor) Allowed(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
