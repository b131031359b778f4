package pathq

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

// The structs below form the concrete syntax tree filled in by participle.
// Parse lowers it into a Query.

type grammarQuery struct {
	Root      string             `@Root`
	Accessors []*grammarAccessor `@@*`
	Descents  []*grammarDescent  `@@*`
}

type grammarAccessor struct {
	Field   string          `  "." @Ident`
	Bracket *grammarBracket `| "[" @@ "]"`
}

type grammarBracket struct {
	Pos lexer.Position

	Wildcard bool           `  @"*"`
	Filter   *grammarFilter `| "?" "(" @@ ")"`
	Name     *grammarString `| @@`
	Indices  []string       `| @Int ( "," @Int )*`
}

type grammarDescent struct {
	Name string `".." @Ident`
}

type grammarFilter struct {
	Steps []*grammarStep `"@" @@*`
	Op    Operator       `@CompareOp`
	Value *grammarValue  `@@`
}

type grammarStep struct {
	Field   string              `  "." @Ident`
	Bracket *grammarStepBracket `| "[" @@ "]"`
}

type grammarStepBracket struct {
	Pos lexer.Position

	Name  *grammarString `  @@`
	Index string         `| @Int`
}

type grammarValue struct {
	Pos lexer.Position

	Str   *grammarString `  @@`
	Int   string         `| @Int`
	True  bool           `| @"true"`
	False bool           `| @"false"`
	Null  bool           `| @"null"`
}

// grammarString keeps its surrounding quotes; the pointer tells an empty
// string apart from an absent one.
type grammarString struct {
	Quoted string `@String`
}

func (s *grammarString) unquote() string {
	return s.Quoted[1 : len(s.Quoted)-1]
}

var queryLexer = lexer.Must(lexer.Regexp(`(\s+)` +
	`|(?P<Root>\$)` +
	`|(?P<Descent>\.\.)` +
	`|(?P<CompareOp>[=!]=|[<>]=?)` +
	`|(?P<Int>-?\d+)` +
	`|(?P<String>"[^"]*"|'[^']*')` +
	`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
	`|(?P<Punct>[.\[\](),*?@])`,
))

var queryParser = participle.MustBuild(
	&grammarQuery{},
	participle.Lexer(queryLexer),
	participle.UseLookahead(2),
)
