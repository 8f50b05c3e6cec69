package domain

// User is owned by the User service and is the source of truth for privilege checks.
type User struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	IsAdmin    bool   `json:"is_admin" bson:"is_admin"`
	LastActive int64  `json:"last_active,omitempty" bson:"last_active,omitempty"`
}

// AdminStatus is the answer of the privilege endpoint.
type AdminStatus struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}
