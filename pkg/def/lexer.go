package def

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// recordLexer defines the token structure for individual DEF records.
// DEF records are whitespace-separated symbols with parenthesized
// connection groups and a semicolon terminator; everything else (escaped
// identifiers, bus bits, modifier keywords) is an opaque symbol.
var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	// DEF comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Semicolon", Pattern: `;`},

	// Instance names may carry hierarchy separators, escaped brackets and
	// bus subscripts (e.g. "core/reg\[3\]"), so a symbol is any run of
	// characters that is not whitespace, a paren, or the terminator.
	{Name: "Symbol", Pattern: `[^\s();]+`},
})
