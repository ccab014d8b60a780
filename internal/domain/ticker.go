package domain

import "errors"

// Ticker parse errors.
var (
	ErrTickerLength = errors.New("ticker must be between 3 and 5 characters")
	ErrTickerChars  = errors.New("ticker must contain only ASCII letters")
)

// Ticker is a 3-5 character stock symbol stored uppercase. The zero value is
// not a valid ticker; construct one through ParseTicker. Tickers are
// comparable with == and safe to use as map keys, so two tickers built from
// differently-cased input compare equal.
type Ticker struct {
	buf [5]byte
	len uint8
}

// ParseTicker validates and canonicalizes a raw symbol.
func ParseTicker(s string) (Ticker, error) {
	return parseTicker([]byte(s))
}

// ParseTickerBytes is ParseTicker for raw byte input.
func ParseTickerBytes(b []byte) (Ticker, error) {
	return parseTicker(b)
}

func parseTicker(b []byte) (Ticker, error) {
	if len(b) < 3 || len(b) > 5 {
		return Ticker{}, ErrTickerLength
	}

	var t Ticker
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			t.buf[i] = c - ('a' - 'A')
		case c >= 'A' && c <= 'Z':
			t.buf[i] = c
		default:
			return Ticker{}, ErrTickerChars
		}
	}
	t.len = uint8(len(b))

	return t, nil
}

// String returns the canonical uppercase form.
func (t Ticker) String() string {
	return string(t.buf[:t.len])
}

// IsZero reports whether t is the zero (unparsed) ticker.
func (t Ticker) IsZero() bool {
	return t.len == 0
}
