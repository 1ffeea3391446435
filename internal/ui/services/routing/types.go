package routing

// Page identifies the screen a route renders
type Page int

const (
	PageNotFound Page = iota
	PageCatalog
	PageTopic
	PagePlayground
	PageAbout
	PageContact
	PageFAQ
	PageRoadmap
)

// String returns the page name used in logs and the status bar
func (p Page) String() string {
	switch p {
	case PageCatalog:
		return "Topics"
	case PageTopic:
		return "Topic"
	case PagePlayground:
		return "Playground"
	case PageAbout:
		return "About"
	case PageContact:
		return "Contact"
	case PageFAQ:
		return "FAQ"
	case PageRoadmap:
		return "Roadmap"
	default:
		return "Not Found"
	}
}

// Route is a parsed path
type Route struct {
	Path    string
	Page    Page
	TopicID string // set for PageTopic only
}

// Home is the catalog path
const Home = "/"

// Link is an entry of the top navigation bar
type Link struct {
	Key   string
	Label string
	Path  string
}

// NavLinks are the pages reachable from the navigation bar, in display order
var NavLinks = []Link{
	{Key: "F1", Label: "Topics", Path: "/"},
	{Key: "F2", Label: "Playground", Path: "/playground"},
	{Key: "F3", Label: "Roadmap", Path: "/roadmap"},
	{Key: "F4", Label: "FAQ", Path: "/faq"},
	{Key: "F5", Label: "About", Path: "/about"},
	{Key: "F6", Label: "Contact", Path: "/contact"},
}
