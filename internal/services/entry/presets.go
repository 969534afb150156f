package entry

import "github.com/mcoot/cardbank/internal/config"

// Amount is the money widget: ±CoarseStep on up/down, ±FineStep on left/right
func Amount(cfg config.Terminal) Config {
	return Config{
		Min:        cfg.TxMin,
		Max:        cfg.TxMax,
		Initial:    cfg.TxMin,
		CoarseStep: cfg.TxCoarseStep,
		FineStep:   cfg.TxFineStep,
	}
}

// Counter is the house/hotel widget: ±1 on up/down only
func Counter(cfg config.Terminal) Config {
	return Config{
		Min:      0,
		Max:      cfg.CounterMax,
		Initial:  0,
		FineStep: 1,
	}
}

// StartingBalance is the session setup widget for the money each player starts with
func StartingBalance(cfg config.Terminal) Config {
	return Config{
		Min:      cfg.StartMin,
		Max:      cfg.StartMax,
		Initial:  cfg.StartDefault,
		FineStep: cfg.StartStep,
	}
}

// PlayerCount is the session setup widget for the number of players
func PlayerCount(cfg config.Terminal) Config {
	return Config{
		Min:      int64(cfg.MinPlayers),
		Max:      int64(cfg.MaxPlayers),
		Initial:  int64(cfg.DefaultPlayers),
		FineStep: 1,
	}
}
