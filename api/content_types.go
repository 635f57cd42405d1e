package api

// contentResponse is the full list-mode payload. The key names are consumed
// verbatim by the deployed client.
type contentResponse struct {
	ProjectsData   []projectPayload     `json:"projectsData"`
	Gallery        []galleryPayload     `json:"gallery"`
	Events         eventGroups          `json:"events"`
	Team           []teamPayload        `json:"team"`
	Alumni         []alumnusPayload     `json:"alumni"`
	TimelineEvents []timelinePayload    `json:"timelineEvents"`
	Achievements   []achievementPayload `json:"achievements"`
	PartnersData   []partnerPayload     `json:"partnersData"`
}

// mediaInfo is the thumbnail block attached to every media-owning entity.
// detailsLoaded tells the client whether a detail-mode fetch is still needed
// before opening a full view.
type mediaInfo struct {
	Images        []string `json:"images"`
	TotalImages   int      `json:"totalImages"`
	DetailsLoaded bool     `json:"detailsLoaded"`
}

type projectPayload struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Year         int      `json:"year"`
	Technologies []string `json:"technologies"`
	TeamMembers  []string `json:"teamMembers"`
	GithubURL    string   `json:"github_url"`
	mediaInfo
}

type eventPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	mediaInfo
}

// eventGroups splits events around the current instant
type eventGroups struct {
	Upcoming []eventPayload `json:"upcoming"`
	Past     []eventPayload `json:"past"`
}

type galleryPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	mediaInfo
}

type teamPayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Image      string `json:"image"`
}

type alumnusPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CurrentRole string `json:"currentRole"`
	Year        int    `json:"year"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

type timelinePayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	mediaInfo
}

type achievementPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type partnerPayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
}

// detailImagesResponse is the detail-mode payload
type detailImagesResponse struct {
	Images []string `json:"images"`
}

type buttonStatusResponse struct {
	Enabled bool `json:"enabled"`
}
