package extract

import "regexp"

var (
	// faxPattern marks fax lines, which never carry the role holder's phone.
	faxPattern = regexp.MustCompile(`(?i)\bfax\b`)

	// phoneLabelPattern marks explicitly labeled telephone lines.
	phoneLabelPattern = regexp.MustCompile(`(?i)\b(tel|telefones?|fones?|phone)\b`)

	// labelPattern matches contact labels embedded in titles and names.
	labelPattern = regexp.MustCompile(`(?i)\b(e-?mail|tel|telefones?|fones?|fax|contatos?)\b\.?\s*:?`)

	// suffixPattern matches a "/NNNN" extension group. The caller rejects
	// groups followed by a digit or a hyphen, which start a full number.
	suffixPattern = regexp.MustCompile(`/\s*(\d{4})`)

	// localPattern matches a number written without area code.
	localPattern = regexp.MustCompile(`\d{4,5}-\d{4}`)

	// genderMarkPattern matches the "(A)" marker of "Ministro(a)".
	genderMarkPattern = regexp.MustCompile(`\(\s*[aA]\s*\)`)

	// separatorPattern matches pipes, dashes and spaced hyphens.
	separatorPattern = regexp.MustCompile(`\s*[|–—]+\s*|\s+-+\s+`)

	// digitsPattern matches any digit run.
	digitsPattern = regexp.MustCompile(`\d+`)
)
