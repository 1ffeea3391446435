package session

// State holds the shared search session. There is exactly one per running
// application.
type State struct {
	Query          string
	OverlayVisible bool
}

// TopicPath is the route a selected topic navigates to
func TopicPath(id string) string {
	return "/topic/" + id
}
