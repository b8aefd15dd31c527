package token

import (
	"errors"
	"io"

	"github.com/zhemalb/scheme/internal/errs"
)

// Tokenizer consumes a byte stream and yields Token values, buffering at
// most one token ahead so Peek is idempotent and Next is the only
// operation that advances. Designed for incremental input: if the
// underlying reader currently has nothing to offer, IsEnd/Peek report
// end-of-input for *that* call, but re-scan the reader on every
// subsequent call, so bytes written later to the same stream are picked
// up without the caller needing to build a new Tokenizer.
type Tokenizer struct {
	r           *byteReader
	buffered    Token
	hasBuffered bool
	atEnd       bool
}

// New wraps r in a Tokenizer.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{r: newByteReader(r)}
}

// IsEnd reports whether no more tokens are currently available.
func (t *Tokenizer) IsEnd() (bool, error) {
	if err := t.fill(); err != nil {
		return false, err
	}
	return t.atEnd, nil
}

// Peek returns the current token without consuming it. It is an error to
// call Peek once IsEnd reports true.
func (t *Tokenizer) Peek() (Token, error) {
	if err := t.fill(); err != nil {
		return Token{}, err
	}
	if t.atEnd {
		return Token{}, errs.Syntax("unexpected end of input")
	}
	return t.buffered, nil
}

// Next advances past the current token.
func (t *Tokenizer) Next() error {
	if err := t.fill(); err != nil {
		return err
	}
	if t.atEnd {
		return errs.Syntax("unexpected end of input")
	}
	t.hasBuffered = false
	return nil
}

// fill ensures a token is buffered, scanning the reader if necessary.
// Re-attempts the scan whenever nothing is buffered, rather than caching
// a permanent end-of-stream flag, so late-arriving bytes on the same
// stream are observed.
func (t *Tokenizer) fill() error {
	if t.hasBuffered {
		return nil
	}
	tok, err := t.scan()
	if err == io.EOF || err == errNoData {
		t.atEnd = true
		return nil
	}
	if err != nil {
		return err
	}
	t.atEnd = false
	t.buffered = tok
	t.hasBuffered = true
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSymbolStart(b byte) bool {
	switch b {
	case '<', '=', '>', '*', '#':
		return true
	default:
		return isAlpha(b)
	}
}

func isSymbolBody(b byte) bool {
	if isSymbolStart(b) || isDigit(b) {
		return true
	}
	switch b {
	case '?', '!', '-':
		return true
	default:
		return false
	}
}

// isTerminal reports whether err signals that scanning should stop
// gracefully (either truly out of bytes, or not yet holding enough to
// decide): both end a digit or symbol run the same way.
func isTerminal(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, errNoData)
}

func (t *Tokenizer) skipWhitespace() error {
	for {
		b, err := t.r.ReadByte()
		if isTerminal(err) {
			return err
		}
		if err != nil {
			return err
		}
		if !isSpace(b) {
			t.r.UnreadByte(b)
			return nil
		}
	}
}

func (t *Tokenizer) scan() (Token, error) {
	if err := t.skipWhitespace(); err != nil {
		return Token{}, err
	}

	b, err := t.r.ReadByte()
	if err != nil {
		return Token{}, err
	}

	switch b {
	case '(':
		return Token{Kind: Open}, nil
	case ')':
		return Token{Kind: Close}, nil
	case '\'':
		return Token{Kind: Quote}, nil
	case '.':
		return Token{Kind: Dot}, nil
	case '/':
		return Token{Kind: Symbol, Sym: "/"}, nil
	}

	if isDigit(b) {
		n := t.readNumber(1, b)
		return Token{Kind: Number, Num: n}, nil
	}

	if b == '+' || b == '-' {
		next, err := t.r.ReadByte()
		if err == nil && isDigit(next) {
			sign := int64(1)
			if b == '-' {
				sign = -1
			}
			n := t.readNumber(sign, next)
			return Token{Kind: Number, Num: n}, nil
		}
		if err == nil {
			t.r.UnreadByte(next)
		}
		return Token{Kind: Symbol, Sym: string(b)}, nil
	}

	if isSymbolStart(b) {
		name := t.readSymbol(b)
		return Token{Kind: Symbol, Sym: name}, nil
	}

	return Token{}, errs.Syntax("unexpected character %q", b)
}

// readNumber consumes a maximal run of digits following firstDigit and
// combines it with sign into a Number token's value. A transient lack of
// further bytes (errNoData) ends the run the same way true EOF does.
func (t *Tokenizer) readNumber(sign int64, firstDigit byte) int64 {
	val := int64(firstDigit - '0')
	for {
		b, err := t.r.ReadByte()
		if isTerminal(err) {
			break
		}
		if !isDigit(b) {
			t.r.UnreadByte(b)
			break
		}
		val = val*10 + int64(b-'0')
	}
	return sign * val
}

// readSymbol consumes a maximal run of symbol-body characters following
// firstChar.
func (t *Tokenizer) readSymbol(firstChar byte) string {
	name := []byte{firstChar}
	for {
		b, err := t.r.ReadByte()
		if isTerminal(err) {
			break
		}
		if !isSymbolBody(b) {
			t.r.UnreadByte(b)
			break
		}
		name = append(name, b)
	}
	return string(name)
}
