package models

// User is the record stored under users/<uid> in the Realtime Database.
// SavedGames is keyed by date, then by the millisecond timestamp of the
// session, then by the store-generated push key of each fragment.
type User struct {
	UID         string                                       `json:"uid"`
	Email       string                                       `json:"email"`
	DisplayName string                                       `json:"displayName,omitempty"`
	PhoneNumber string                                       `json:"phoneNumber,omitempty"`
	SavedGames  map[string]map[string]map[string]interface{} `json:"saved_games"`
}

// UserSummary is what the identity provider returns for an account.
type UserSummary struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Disabled    bool   `json:"disabled"`
}

// CreateUserParams carries the fields for a new authentication account.
// Email and Password are mandatory; the rest are optional.
type CreateUserParams struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
}
