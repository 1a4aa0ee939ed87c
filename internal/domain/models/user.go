package models

var UserRequired = []string{"username", "password"}

// User is a login account. Password holds the bcrypt hash once stored and
// is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Fields() map[string]string {
	return map[string]string{"username": c.Username, "password": c.Password}
}

// UserWithToken is the body returned by register and login.
type UserWithToken struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
