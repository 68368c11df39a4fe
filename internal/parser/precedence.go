package parser

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/token"
)

// exprCategory tags what kind of secondary operator a token represents
// during precedence climbing.
type exprCategory int

const (
	catNone exprCategory = iota
	catAssign
	catRange
	catBinary
)

// opInfo is one row of the precedence table in §4.2.
type opInfo struct {
	category exprCategory
	prec     int
	rightAssoc bool
	binOp    ast.BinaryOp
	assignOp ast.AssignOp
}

var opTable = map[token.Kind]opInfo{
	// Level 1: assignment, right-associative.
	token.Equals:                {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.Assign},
	token.PlusEquals:            {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.AddAssign},
	token.MinusEquals:           {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.SubAssign},
	token.AsteriskEquals:        {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.MulAssign},
	token.SolidusEquals:         {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.DivAssign},
	token.PercentEquals:         {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.ModAssign},
	token.LeftShiftEquals:       {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.ShlAssign},
	token.RightShiftEquals:      {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.ShrAssign},
	token.AmpersandEquals:       {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.AndAssign},
	token.CircumflexEquals:      {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.XorAssign},
	token.PipeEquals:            {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.OrAssign},
	token.DoubleAmpersandEquals: {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.LogAndAssign},
	token.DoublePipeEquals:      {category: catAssign, prec: 1, rightAssoc: true, assignOp: ast.LogOrAssign},

	// Level 2: range, right-associative.
	token.DotDotEquals: {category: catRange, prec: 2, rightAssoc: true},
	token.DotDotLess:   {category: catRange, prec: 2, rightAssoc: true},

	// Levels 3-12: binary, left-associative.
	token.DoublePipe:      {category: catBinary, prec: 3, binOp: ast.LogOr},
	token.DoubleAmpersand: {category: catBinary, prec: 4, binOp: ast.LogAnd},
	token.DoubleEquals:    {category: catBinary, prec: 5, binOp: ast.Eq},
	token.ExclamationMarkEquals: {category: catBinary, prec: 5, binOp: ast.Ne},
	token.LessThan:            {category: catBinary, prec: 6, binOp: ast.Lt},
	token.GreaterThan:         {category: catBinary, prec: 6, binOp: ast.Gt},
	token.LessThanEquals:      {category: catBinary, prec: 6, binOp: ast.Le},
	token.GreaterThanEquals:   {category: catBinary, prec: 6, binOp: ast.Ge},
	token.Pipe:                {category: catBinary, prec: 7, binOp: ast.BitOr},
	token.Circumflex:          {category: catBinary, prec: 8, binOp: ast.BitXor},
	token.Ampersand:           {category: catBinary, prec: 9, binOp: ast.BitAnd},
	token.LeftShift:           {category: catBinary, prec: 10, binOp: ast.Shl},
	token.RightShift:          {category: catBinary, prec: 10, binOp: ast.Shr},
	token.Plus:                {category: catBinary, prec: 11, binOp: ast.Add},
	token.Minus:               {category: catBinary, prec: 11, binOp: ast.Sub},
	token.Asterisk:            {category: catBinary, prec: 12, binOp: ast.Mul},
	token.Solidus:             {category: catBinary, prec: 12, binOp: ast.Div},
	token.Percent:             {category: catBinary, prec: 12, binOp: ast.Mod},
}

// prefixPrecedence is the fixed binding power (level 13) at which a
// prefix operator's operand is parsed.
const prefixPrecedence = 13
