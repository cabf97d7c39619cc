package api

import (
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
)

// UserRequest is the body of the create and update endpoints. Every field
// is optional on the wire; an omitted key and an explicit null are both
// absent. The struct tags carry the create rules.
type UserRequest struct {
	Name    domain.Optional[string]  `json:"name"    validate:"required"`
	Surname domain.Optional[string]  `json:"surname" validate:"required"`
	Age     domain.Optional[float64] `json:"age"     validate:"required"`
}

// HasAll reports whether the request supplies a non-empty name and surname
// and an age. A zero age is supplied.
func (r UserRequest) HasAll() bool {
	return r.hasName() && r.hasSurname() && r.Age.Set
}

// HasAny reports whether the request supplies at least one of the fields.
func (r UserRequest) HasAny() bool {
	return r.hasName() || r.hasSurname() || r.Age.Set
}

func (r UserRequest) hasName() bool {
	return r.Name.Set && r.Name.Value != ""
}

func (r UserRequest) hasSurname() bool {
	return r.Surname.Set && r.Surname.Value != ""
}

// Fields converts the request into the full set of writable fields.
// Absent values become nil and are stored as null.
func (r UserRequest) Fields() domain.UserFields {
	return domain.UserFields{
		Name:    r.Name.Ptr(),
		Surname: r.Surname.Ptr(),
		Age:     r.Age.Ptr(),
	}
}

// updateUserRequest applies the update rule to a UserRequest.
type updateUserRequest struct {
	UserRequest
}

// Validate implements the self-validating contract used by shared.ValidateRequest.
func (r updateUserRequest) Validate() error {
	if !r.HasAny() {
		return domain.NewValidationError("", domain.ErrNoUserFields.Error(), domain.ErrNoUserFields)
	}
	return nil
}

// UserResponse is the wire form of a stored user.
type UserResponse struct {
	ID      string   `json:"id"`
	Name    *string  `json:"name"`
	Surname *string  `json:"surname"`
	Age     *float64 `json:"age"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Surname: user.Surname,
		Age:     user.Age,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userToResponse(u))
	}
	return resp
}
