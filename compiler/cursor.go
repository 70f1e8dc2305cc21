package compiler

// cursor walks one line of source text a rune at a time, skipping
// whitespace before every peek so that the column reported for the next
// token is always the column of its first real character — not of
// whitespace the caller hasn't looked at yet.
type cursor struct {
	line []rune
	pos  int
}

func newCursor(line string) *cursor {
	return &cursor{line: []rune(line)}
}

func (c *cursor) skipWhitespace() {
	for c.pos < len(c.line) && (c.line[c.pos] == ' ' || c.line[c.pos] == '\t') {
		c.pos++
	}
}

// Peek returns the next non-whitespace character without consuming it.
func (c *cursor) Peek() (rune, bool) {
	c.skipWhitespace()
	if c.pos >= len(c.line) {
		return 0, false
	}
	return c.line[c.pos], true
}

// Next returns and consumes the next non-whitespace character.
func (c *cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}
	return r, ok
}

// Column returns the 0-based column of the next non-whitespace
// character (or of the end of line, if none remain).
func (c *cursor) Column() int {
	c.skipWhitespace()
	return c.pos
}

// atEOF reports whether only whitespace remains.
func (c *cursor) atEOF() bool {
	_, ok := c.Peek()
	return !ok
}

// remaining returns the not-yet-consumed text, after skipping whitespace,
// for convenient literal-prefix matching.
func (c *cursor) remaining() string {
	c.skipWhitespace()
	return string(c.line[c.pos:])
}

// consume advances past n runes (already located via remaining/peekWord).
func (c *cursor) consume(n int) {
	c.pos += n
}

// pushBack un-consumes one rune, for numlex's "unparsed char" backtrack:
// a letter tentatively read as the start of an exponent (e.g. the 'E' of
// "END") that turned out to belong to the next token instead.
func (c *cursor) pushBack(r rune) {
	c.pos--
}

// peekWord returns the maximal leading run of ASCII letters in the
// not-yet-consumed text, without consuming it.
func (c *cursor) peekWord() string {
	c.skipWhitespace()
	start := c.pos
	i := start
	for i < len(c.line) && isAlpha(c.line[i]) {
		i++
	}
	return string(c.line[start:i])
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// rawPeek returns the next character without skipping whitespace and
// without consuming it.
func (c *cursor) rawPeek() (rune, bool) {
	if c.pos >= len(c.line) {
		return 0, false
	}
	return c.line[c.pos], true
}

// rawNext returns and consumes the next character without skipping
// whitespace.
func (c *cursor) rawNext() (rune, bool) {
	r, ok := c.rawPeek()
	if ok {
		c.pos++
	}
	return r, ok
}

// numSource adapts cursor to numlex.Source using the raw, non-skipping
// view above: the constant-literal state machine must see an internal
// space and stop there, not have it silently skipped the way normal
// token scanning does ("1 5" is the literal "1" followed by "5", not
// the single literal "15"). The caller positions the cursor onto the
// literal's first character (skipping any leading whitespace) before
// constructing a numSource, so no skip is needed here.
type numSource struct {
	c *cursor
}

func (n numSource) Peek() (rune, bool) { return n.c.rawPeek() }
func (n numSource) Next() (rune, bool) { return n.c.rawNext() }
func (n numSource) Column() int        { return n.c.pos }
