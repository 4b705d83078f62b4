package domain

// User is the account profile owned by the identity provider. It is never
// persisted locally; only read or created through the provider's API.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
