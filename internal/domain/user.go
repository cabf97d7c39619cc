package domain

// User is a stored user record. ID is assigned by the document store on
// creation and is never supplied by clients. The remaining fields are
// nullable in storage: an update that omits a field writes null.
type User struct {
	ID      string   `json:"id"`
	Name    *string  `json:"name"`
	Surname *string  `json:"surname"`
	Age     *float64 `json:"age"`
}

// UserFields is the complete set of writable user fields. Stores write every
// field on create and on update, nil included.
type UserFields struct {
	Name    *string
	Surname *string
	Age     *float64
}

// NewUserFields builds a UserFields with all three values present.
func NewUserFields(name, surname string, age float64) UserFields {
	return UserFields{
		Name:    &name,
		Surname: &surname,
		Age:     &age,
	}
}

// Fields returns the writable fields of u.
func (u *User) Fields() UserFields {
	return UserFields{
		Name:    u.Name,
		Surname: u.Surname,
		Age:     u.Age,
	}
}

// WithID returns a User carrying id and the given fields.
func (f UserFields) WithID(id string) *User {
	return &User{
		ID:      id,
		Name:    f.Name,
		Surname: f.Surname,
		Age:     f.Age,
	}
}
