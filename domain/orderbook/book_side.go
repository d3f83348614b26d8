package orderbook

// bookSide holds one side's price-ordered levels plus a cached best
// entry. For bids, best is the maximum price; for asks, the minimum.
type bookSide struct {
	side Side
	tree *rbTree
	best *priceLevel
}

func newBookSide(side Side) *bookSide {
	return &bookSide{side: side, tree: newRBTree()}
}

// getOrCreate returns the level at price, creating it if absent, and
// refreshes the best cache if the new level beats the current best.
func (s *bookSide) getOrCreate(arena *Arena, price Price) *priceLevel {
	lvl := s.tree.UpsertLevel(price, func() *priceLevel {
		return newPriceLevel(arena, s.side, price)
	})
	if s.best == nil || s.better(lvl.price, s.best.price) {
		s.best = lvl
	}
	return lvl
}

func (s *bookSide) get(price Price) *priceLevel {
	return s.tree.FindLevel(price)
}

// removeIfEmpty drops the level at price from the map if its count
// has dropped to zero, recomputing the best cache when necessary.
func (s *bookSide) removeIfEmpty(lvl *priceLevel) {
	if !lvl.isEmpty() {
		return
	}
	s.tree.DeleteLevel(lvl.price)
	if s.best == lvl {
		s.refreshBest()
	}
}

func (s *bookSide) refreshBest() {
	if s.side == Buy {
		s.best = s.tree.MaxLevel()
	} else {
		s.best = s.tree.MinLevel()
	}
}

// bestLevel returns the cached best level, or nil if the side is empty.
func (s *bookSide) bestLevel() *priceLevel {
	return s.best
}

// better reports whether price a is strictly more favorable than b
// for this side (higher for bids, lower for asks).
func (s *bookSide) better(a, b Price) bool {
	if s.side == Buy {
		return a > b
	}
	return a < b
}

// crossable reports whether a level at levelPrice on this side may
// trade against an incoming limit order resting at limitPrice. This
// bookSide holds the *opposite* side from the incoming order.
func (s *bookSide) crossable(levelPrice, limitPrice Price) bool {
	if s.side == Sell {
		// incoming is Buy; asks cross while ask price <= limit
		return levelPrice <= limitPrice
	}
	// incoming is Sell; bids cross while bid price >= limit
	return levelPrice >= limitPrice
}

// iterCrossable walks levels best-first, in the direction of
// increasingly less favorable prices, stopping as soon as a level is
// no longer crossable against limitPrice or fn asks to stop.
func (s *bookSide) iterCrossable(limitPrice Price, fn func(*priceLevel) bool) {
	walk := s.tree.ForEachAscending
	if s.side == Buy {
		walk = s.tree.ForEachDescending
	}
	walk(func(lvl *priceLevel) bool {
		if !s.crossable(lvl.price, limitPrice) {
			return false
		}
		return fn(lvl)
	})
}
