package models

// User is the authenticated account as the backend reports it from the
// who-am-I endpoint.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
