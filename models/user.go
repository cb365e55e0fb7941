package models

const UserSet = "user"

// User is the single admin account. Password holds the argon2-encoded hash,
// never the clear text.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type PublicUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{Email: u.Email, Name: u.Name}
}
