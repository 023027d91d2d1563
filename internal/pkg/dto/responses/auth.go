package responses

import "odontocare-client/internal/app/models"

// Login is the body of POST /auth/login. The backend flattens the user next
// to the token, and the whole object is what gets persisted as the identity.
type Login struct {
	Token string `json:"token"`
	models.User
}
