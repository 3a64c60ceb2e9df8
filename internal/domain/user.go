package domain

type UserRepository interface {
	CreateUser(user *User) (*User, error)
	GetUserByID(id int64) (*User, error)
	UpdateUser(user *User) (*User, error)
}
