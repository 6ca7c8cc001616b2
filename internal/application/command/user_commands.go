// Package command holds the request payloads accepted by the application
// services. Fields map one-to-one to the JSON wire format.
package command

type SignupCommand struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	CategoryID uint   `json:"category_id"`
}

type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
