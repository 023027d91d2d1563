package models

import "odontocare-client/internal/pkg/constvars"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
}

func (u User) IsPatient() bool {
	return u.Role == constvars.UserRolePatient
}
