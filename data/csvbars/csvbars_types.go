package csvbars

import "errors"

var (
	errNilQueue    = errors.New("nil event queue")
	errNoTickers   = errors.New("no tickers subscribed")
	errShortRecord = errors.New("record needs at least date,open,high,low,close,volume")
)
