package facts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrRead wraps every failure to read a fact file.
var ErrRead = errors.New("read fact file")

// Predicate is one parsed fact. Args keep the literal text of each token.
type Predicate struct {
	Name string
	Args []string
	Pos  lexer.Position
}

func (p Predicate) Arity() int {
	return len(p.Args)
}

// ParseError reports the first place a fact file stops matching the grammar.
type ParseError struct {
	Pos      lexer.Position
	Expected string
	Found    string
	err      error
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: unexpected %s", e.Pos, e.Found)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Parser turns fact text into predicates. Each Parser owns its grammar, so
// separate parsers never share state.
type Parser struct {
	grammar *participle.Parser[document]
}

func NewParser() *Parser {
	g, err := newGrammar()
	if err != nil {
		// The grammar is fixed; failing to build it is a programming error.
		panic(err)
	}
	return &Parser{grammar: g}
}

func (p *Parser) ParseFile(path string) ([]Predicate, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return p.parseBytes(path, text)
}

func (p *Parser) Parse(filename string, r io.Reader) ([]Predicate, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, filename, err)
	}
	return p.parseBytes(filename, text)
}

func (p *Parser) ParseString(filename, text string) ([]Predicate, error) {
	return p.parseBytes(filename, []byte(text))
}

func (p *Parser) parseBytes(filename string, text []byte) ([]Predicate, error) {
	doc, err := p.grammar.ParseBytes(filename, text)
	if err != nil {
		return nil, newParseError(filename, text, err)
	}
	preds := make([]Predicate, len(doc.Sentences))
	for i, s := range doc.Sentences {
		preds[i] = Predicate{Name: s.Name, Args: s.Args, Pos: s.Pos}
	}
	return preds, nil
}

// ParseGroundAtom parses the canonical form produced by Predicate.GroundAtom.
// Callers parsing many atoms should reuse a Parser and call its method instead.
func ParseGroundAtom(s string) (Predicate, error) {
	return NewParser().ParseGroundAtom(s)
}

func (p *Parser) ParseGroundAtom(s string) (Predicate, error) {
	preds, err := p.ParseString("", s+".")
	if err != nil {
		return Predicate{}, err
	}
	if len(preds) != 1 {
		return Predicate{}, &ParseError{Expected: "one atom", Found: fmt.Sprintf("%d atoms", len(preds))}
	}
	return preds[0], nil
}

var expectedRe = regexp.MustCompile(`\(expected (.+)\)$`)

func newParseError(filename string, text []byte, err error) *ParseError {
	pe := &ParseError{err: err, Pos: lexer.Position{Filename: filename, Line: 1, Column: 1}}
	var perr participle.Error
	if errors.As(err, &perr) {
		pe.Pos = perr.Position()
		if pe.Pos.Filename == "" {
			pe.Pos.Filename = filename
		}
	}
	var ute *participle.UnexpectedTokenError
	if errors.As(err, &ute) {
		pe.Expected = ute.Expect
		if pe.Expected == "" {
			if m := expectedRe.FindStringSubmatch(ute.Message()); m != nil {
				pe.Expected = m[1]
			}
		}
		if pe.Expected == "" {
			pe.Expected = "fact or end of input"
		}
		pe.Found = describeToken(ute.Unexpected)
		return pe
	}
	pe.Found = describeOffset(text, pe.Pos.Offset)
	return pe
}

func describeToken(tok lexer.Token) string {
	if tok.EOF() {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Value)
}

func describeOffset(text []byte, offset int) string {
	if offset < 0 || offset >= len(text) {
		return "end of input"
	}
	r, _ := utf8.DecodeRune(text[offset:])
	return fmt.Sprintf("%q", r)
}
