package domain

// Session is the server connection and credential/token bundle enabling
// authenticated calls. UserID and AccessToken are empty until a login
// succeeds; the Session Store owns the persisted record and components
// borrow read-only snapshots of it.
type Session struct {
	ServerURL   string `json:"serverUrl"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	UserID      string `json:"userId,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Authenticated reports whether the session carries the credentials
// required for protected endpoints. Unauthenticated sessions must never
// be used to issue protected calls.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.AccessToken != ""
}
