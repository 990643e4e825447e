package domain

// User represents a registered player account. WalletBalance, XP, Level and
// Inventory are the economic state the case-opening engine mutates; the
// remaining fields are profile data owned by the account CRUD surface.
type User struct {
	ID             string `json:"user_id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	WalletBalance  int64  `json:"wallet_balance"`
	XP             int64  `json:"xp"`
	Level          int    `json:"level"`
	Inventory      []Item `json:"inventory"`
}

// PublicProfile is the subset of a user shown to other players in
// broadcast events.
type PublicProfile struct {
	Name           string `json:"name"`
	ID             string `json:"id"`
	ProfilePicture string `json:"profilePicture"`
}

// Public returns the broadcast-safe view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		Name:           u.Username,
		ID:             u.ID,
		ProfilePicture: u.ProfilePicture,
	}
}
