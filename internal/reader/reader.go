// Package reader turns a token sequence into a single Value: the root
// expression. It honors proper lists, dotted tails, and the '-quote
// reader macro.
package reader

import (
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/token"
	"github.com/zhemalb/scheme/internal/value"
)

// Read reads exactly one complete expression from t and requires t to be
// at end afterwards.
func Read(t *token.Tokenizer) (value.Value, error) {
	end, err := t.IsEnd()
	if err != nil {
		return nil, err
	}
	if end {
		return nil, errs.Syntax("unexpected end of input")
	}
	result, err := readExpr(t)
	if err != nil {
		return nil, err
	}
	end, err = t.IsEnd()
	if err != nil {
		return nil, err
	}
	if !end {
		return nil, errs.Syntax("expected end of input after expression")
	}
	return result, nil
}

func readExpr(t *token.Tokenizer) (value.Value, error) {
	tok, err := t.Peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.Number:
		if err := t.Next(); err != nil {
			return nil, err
		}
		return value.Number(tok.Num), nil

	case token.Symbol:
		if err := t.Next(); err != nil {
			return nil, err
		}
		switch tok.Sym {
		case "#t":
			return value.True(), nil
		case "#f":
			return value.False(), nil
		default:
			return value.Symbol(tok.Sym), nil
		}

	case token.Open:
		if err := t.Next(); err != nil {
			return nil, err
		}
		return readList(t)

	case token.Quote:
		if err := t.Next(); err != nil {
			return nil, err
		}
		end, err := t.IsEnd()
		if err != nil {
			return nil, err
		}
		if end {
			return nil, errs.Syntax("unexpected end of input after quote")
		}
		quoted, err := readExpr(t)
		if err != nil {
			return nil, err
		}
		return value.NewPair(value.Symbol("quote"), value.NewPair(quoted, nil)), nil

	case token.Close:
		return nil, errs.Syntax("unexpected )")

	case token.Dot:
		return nil, errs.Syntax("unexpected .")

	default:
		return nil, errs.Syntax("unexpected token")
	}
}

// readList reads the elements of a list up to and including its closing
// ), having already consumed the opening (.
func readList(t *token.Tokenizer) (value.Value, error) {
	var first value.Value
	var last *value.Pair

	for {
		end, err := t.IsEnd()
		if err != nil {
			return nil, err
		}
		if end {
			return nil, errs.Syntax("unclosed list")
		}

		tok, err := t.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Close {
			if err := t.Next(); err != nil {
				return nil, err
			}
			return first, nil
		}
		if tok.Kind == token.Dot {
			return nil, errs.Syntax("unexpected . in list")
		}

		elem, err := readExpr(t)
		if err != nil {
			return nil, err
		}

		end, err = t.IsEnd()
		if err != nil {
			return nil, err
		}
		if end {
			return nil, errs.Syntax("unclosed list")
		}

		next, err := t.Peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == token.Dot {
			if err := t.Next(); err != nil {
				return nil, err
			}
			end, err := t.IsEnd()
			if err != nil {
				return nil, err
			}
			if end {
				return nil, errs.Syntax("unexpected end of input after .")
			}
			tailTok, err := t.Peek()
			if err != nil {
				return nil, err
			}
			if tailTok.Kind == token.Dot || tailTok.Kind == token.Close {
				return nil, errs.Syntax("malformed dotted pair")
			}
			tail, err := readExpr(t)
			if err != nil {
				return nil, err
			}

			end, err = t.IsEnd()
			if err != nil {
				return nil, err
			}
			if end {
				return nil, errs.Syntax("unclosed dotted list")
			}
			closing, err := t.Peek()
			if err != nil {
				return nil, err
			}
			if closing.Kind != token.Close {
				return nil, errs.Syntax("expected ) after dotted tail")
			}
			if err := t.Next(); err != nil {
				return nil, err
			}

			final := value.NewPair(elem, tail)
			if first == nil {
				return final, nil
			}
			last.SetSecond(final)
			return first, nil
		}

		appended := value.NewPair(elem, nil)
		if first == nil {
			first = appended
			last = appended
		} else {
			last.SetSecond(appended)
			last = appended
		}
	}
}
