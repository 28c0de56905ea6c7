package facts

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type document struct {
	Sentences []*sentence `parser:"@@*"`
}

type sentence struct {
	Pos  lexer.Position
	Name string   `parser:"@Ident"`
	Args []string `parser:"\"(\" @(Number | Ident) ( \",\" @(Number | Ident) )* \")\" \".\""`
}

// Rule order matters: a period only lexes as Number when a digit follows it.
var factRules = []lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `\.*[0-9][0-9.]*`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[(),.]`},
}

func newGrammar() (*participle.Parser[document], error) {
	factLexer, err := lexer.NewSimple(factRules)
	if err != nil {
		return nil, err
	}
	return participle.Build[document](
		participle.Lexer(factLexer),
		participle.Elide("Whitespace"),
	)
}
