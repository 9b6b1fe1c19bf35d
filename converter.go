package quemequem

// Converter renders HTML fragments, such as candidate windows, as Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
