package jellyfin

// AuthResponse represents the response from the AuthenticateByName endpoint
type AuthResponse struct {
	User        User   `json:"User"`
	AccessToken string `json:"AccessToken"`
	ServerID    string `json:"ServerId"`
}

// User represents a Jellyfin user
type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// ItemsResponse represents a paginated list of items
type ItemsResponse struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
	StartIndex       int    `json:"StartIndex"`
}

// Item represents a media item on the wire (movie, series, season, episode)
type Item struct {
	ID                string    `json:"Id"`
	Name              string    `json:"Name"`
	Type              string    `json:"Type"`
	Overview          string    `json:"Overview,omitempty"`
	ProductionYear    int       `json:"ProductionYear,omitempty"`
	PremiereDate      string    `json:"PremiereDate,omitempty"`
	DateCreated       string    `json:"DateCreated,omitempty"`
	CommunityRating   float64   `json:"CommunityRating,omitempty"`
	OfficialRating    string    `json:"OfficialRating,omitempty"`
	RunTimeTicks      int64     `json:"RunTimeTicks,omitempty"` // Duration in 100-nanosecond units
	Genres            []string  `json:"Genres,omitempty"`
	ImageTags         ImageTags `json:"ImageTags,omitempty"`
	BackdropImageTags []string  `json:"BackdropImageTags,omitempty"`
	SeriesID          string    `json:"SeriesId,omitempty"`
	SeriesName        string    `json:"SeriesName,omitempty"`
	SeasonID          string    `json:"SeasonId,omitempty"`
	ParentIndexNumber int       `json:"ParentIndexNumber,omitempty"` // Season number
	IndexNumber       int       `json:"IndexNumber,omitempty"`       // Episode number
}

// ImageTags contains image version tags for the item's image assets
type ImageTags struct {
	Primary  string `json:"Primary,omitempty"`
	Backdrop string `json:"Backdrop,omitempty"`
	Logo     string `json:"Logo,omitempty"`
}
