// Package token defines the closed set of lexical token kinds and the
// Token value the lexer produces one of per call.
package token

import "github.com/boc-lang/boc/internal/diag"

// Kind is the closed set of token kinds the lexer can produce.
type Kind int

const (
	// Special
	Illegal Kind = iota
	EOF

	// Literals and identifiers
	Identifier
	DecimalLiteral
	BinaryLiteral
	OctalLiteral
	HexadecimalLiteral
	CharLiteral

	// Keywords
	KwAnon
	KwBool
	KwChar
	KwElse
	KwFalse
	KwFn
	KwFor
	KwI8
	KwI16
	KwI32
	KwI64
	KwIsize
	KwIf
	KwIn
	KwMut
	KwNull
	KwReturn
	KwTrue
	KwU8
	KwU16
	KwU32
	KwU64
	KwUsize
	KwVar

	// Punctuation and operators
	Ampersand             // &
	AmpersandEquals       // &=
	DoubleAmpersand       // &&
	DoubleAmpersandEquals // &&=
	Asterisk              // *
	AsteriskEquals        // *=
	At                    // @
	Circumflex            // ^
	CircumflexEquals      // ^=
	Colon                 // :
	Comma                 // ,
	DoubleEquals          // ==
	DotDotEquals          // ..=
	DotDotLess            // ..<
	Equals                // =
	ExclamationMark       // !
	ExclamationMarkEquals // !=
	GreaterThan           // >
	GreaterThanEquals     // >=
	LeftCurlyBracket      // {
	LeftParenthesis       // (
	LeftShift             // <<
	LeftShiftEquals       // <<=
	LeftSquareBracket     // [
	LessThan              // <
	LessThanEquals        // <=
	Minus                 // -
	MinusEquals           // -=
	MinusMinus            // --
	Percent               // %
	PercentEquals         // %=
	Pipe                  // |
	PipeEquals            // |=
	DoublePipe            // ||
	DoublePipeEquals      // ||=
	Plus                  // +
	PlusEquals            // +=
	PlusPlus              // ++
	RightCurlyBracket     // }
	RightParenthesis      // )
	RightShift            // >>
	RightShiftEquals      // >>=
	RightSquareBracket    // ]
	Semicolon             // ;
	Solidus               // /
	SolidusEquals         // /=
	Tilde                 // ~
)

var names = map[Kind]string{
	Illegal:               "illegal",
	EOF:                   "end of file",
	Identifier:            "identifier",
	DecimalLiteral:        "decimal literal",
	BinaryLiteral:         "binary literal",
	OctalLiteral:          "octal literal",
	HexadecimalLiteral:    "hexadecimal literal",
	CharLiteral:           "char literal",
	KwAnon:                "'anon'",
	KwBool:                "'bool'",
	KwChar:                "'char'",
	KwElse:                "'else'",
	KwFalse:               "'false'",
	KwFn:                  "'fn'",
	KwFor:                 "'for'",
	KwI8:                  "'i8'",
	KwI16:                 "'i16'",
	KwI32:                 "'i32'",
	KwI64:                 "'i64'",
	KwIsize:               "'isize'",
	KwIf:                  "'if'",
	KwIn:                  "'in'",
	KwMut:                 "'mut'",
	KwNull:                "'null'",
	KwReturn:              "'return'",
	KwTrue:                "'true'",
	KwU8:                  "'u8'",
	KwU16:                 "'u16'",
	KwU32:                 "'u32'",
	KwU64:                 "'u64'",
	KwUsize:               "'usize'",
	KwVar:                 "'var'",
	Ampersand:             "'&'",
	AmpersandEquals:       "'&='",
	DoubleAmpersand:       "'&&'",
	DoubleAmpersandEquals: "'&&='",
	Asterisk:              "'*'",
	AsteriskEquals:        "'*='",
	At:                    "'@'",
	Circumflex:            "'^'",
	CircumflexEquals:      "'^='",
	Colon:                 "':'",
	Comma:                 "','",
	DoubleEquals:          "'=='",
	DotDotEquals:          "'..='",
	DotDotLess:            "'..<'",
	Equals:                "'='",
	ExclamationMark:       "'!'",
	ExclamationMarkEquals: "'!='",
	GreaterThan:           "'>'",
	GreaterThanEquals:     "'>='",
	LeftCurlyBracket:      "'{'",
	LeftParenthesis:       "'('",
	LeftShift:             "'<<'",
	LeftShiftEquals:       "'<<='",
	LeftSquareBracket:     "'['",
	LessThan:              "'<'",
	LessThanEquals:        "'<='",
	Minus:                 "'-'",
	MinusEquals:           "'-='",
	MinusMinus:            "'--'",
	Percent:               "'%'",
	PercentEquals:         "'%='",
	Pipe:                  "'|'",
	PipeEquals:            "'|='",
	DoublePipe:            "'||'",
	DoublePipeEquals:      "'||='",
	Plus:                  "'+'",
	PlusEquals:            "'+='",
	PlusPlus:              "'++'",
	RightCurlyBracket:     "'}'",
	RightParenthesis:      "')'",
	RightShift:            "'>>'",
	RightShiftEquals:      "'>>='",
	RightSquareBracket:    "']'",
	Semicolon:             "';'",
	Solidus:               "'/'",
	SolidusEquals:         "'/='",
	Tilde:                 "'~'",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown token"
}

// keywords maps the exact source spelling to its keyword Kind.
var keywords = map[string]Kind{
	"anon":   KwAnon,
	"bool":   KwBool,
	"char":   KwChar,
	"else":   KwElse,
	"false":  KwFalse,
	"fn":     KwFn,
	"for":    KwFor,
	"i8":     KwI8,
	"i16":    KwI16,
	"i32":    KwI32,
	"i64":    KwI64,
	"isize":  KwIsize,
	"if":     KwIf,
	"in":     KwIn,
	"mut":    KwMut,
	"null":   KwNull,
	"return": KwReturn,
	"true":   KwTrue,
	"u8":     KwU8,
	"u16":    KwU16,
	"u32":    KwU32,
	"u64":    KwU64,
	"usize":  KwUsize,
	"var":    KwVar,
}

// LookupIdentifier returns the keyword Kind for lexeme if it is one of
// the reserved words, otherwise Identifier.
func LookupIdentifier(lexeme string) Kind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return Identifier
}

// IntegerSuffixes is the closed set of legal integer literal suffixes.
var IntegerSuffixes = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "usize": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "isize": true,
}

// Token is a single lexical token: its kind, the borrowed lexeme it
// covers in the source, and the span of that lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   diag.Span
}
