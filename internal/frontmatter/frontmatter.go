// Package frontmatter splits `---` delimited YAML frontmatter from Markdown
// bodies and parses it into a typed schema with explicit validation, instead
// of best-effort string scraping.
package frontmatter

import (
	"bytes"
	"errors"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// ErrMissingTitle indicates the frontmatter parsed but carries no usable title.
var ErrMissingTitle = errors.New("frontmatter has no title field")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is
// false and body is the full input. Both "\n" and "\r\n" newline styles are
// accepted; the corpus contains files written on different platforms.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		// Empty frontmatter block.
		return []byte{}, content[start+len(closeLine):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
