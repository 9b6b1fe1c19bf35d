package quemequem

// MainContent is the boilerplate-free content of a page.
type MainContent struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main content with navigation, footers and
	// sidebars removed.
	ContentHTML string
}

// ContentExtractor isolates the main content of a page. It is used to
// inspect pages whose layout defeats the locator.
type ContentExtractor interface {
	Extract(html string) (*MainContent, error)
}
