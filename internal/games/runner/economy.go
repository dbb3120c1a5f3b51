package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Unlimited marks a power-up that never runs out.
const Unlimited = -1

// Purchase is the outcome of a power-up purchase attempt.
type Purchase int

const (
	PurchaseOK Purchase = iota
	PurchaseInsufficientCoins
	PurchaseSoldOut
)

// String returns the notification text shown to the player.
func (p Purchase) String() string {
	switch p {
	case PurchaseOK:
		return "Power-up activated!"
	case PurchaseInsufficientCoins:
		return "Not enough coins!"
	case PurchaseSoldOut:
		return "No power-ups left!"
	default:
		return "?"
	}
}

// Economy tracks score, coins and the power-up inventory.
// Coins, BestScore and PowerUpsAvailable survive restarts within a session.
type Economy struct {
	Score             int
	BestScore         int
	Coins             int
	PowerUpsAvailable int
	PowerUpRemaining  int // Ticks left on the active power-up, or Unlimited
	PowerUpsBought    int // Purchases during the current run

	cfg      config.EconomyConfig
	runOver  bool // Set at game over until the next run starts
	lateBuys int  // Purchases made on the game-over screen
}

// NewEconomy creates a fresh session economy.
func NewEconomy(cfg config.EconomyConfig) Economy {
	return Economy{
		PowerUpsAvailable: cfg.PowerUpsPerSession,
		cfg:               cfg,
	}
}

// Cost returns the coin price of one power-up.
func (e *Economy) Cost() int {
	return e.cfg.PowerUpCost
}

// Tick awards one tick's worth of score and coins.
func (e *Economy) Tick() {
	e.Score++
	e.Coins += e.cfg.CoinsPerTick
}

// BuyPowerUp spends coins and inventory to power up the player.
// On rejection nothing changes.
func (e *Economy) BuyPowerUp(p *Player) Purchase {
	if e.Coins < e.cfg.PowerUpCost {
		return PurchaseInsufficientCoins
	}
	if e.PowerUpsAvailable <= 0 {
		return PurchaseSoldOut
	}

	e.Coins -= e.cfg.PowerUpCost
	e.PowerUpsAvailable--
	if e.runOver {
		e.lateBuys++
	} else {
		e.PowerUpsBought++
	}
	p.PowerUp = true

	e.PowerUpRemaining = Unlimited
	if e.cfg.PowerUpDuration > 0 {
		e.PowerUpRemaining = e.cfg.PowerUpDuration
	}
	return PurchaseOK
}

// DecayPowerUp counts down an active power-up and switches it off when it
// runs out. Returns true on the tick it expires.
func (e *Economy) DecayPowerUp(p *Player) bool {
	if !p.PowerUp || e.PowerUpRemaining == Unlimited {
		return false
	}

	e.PowerUpRemaining--
	if e.PowerUpRemaining > 0 {
		return false
	}

	e.PowerUpRemaining = 0
	p.PowerUp = false
	return true
}

// RecordBest folds the current score into the session high-water mark.
func (e *Economy) RecordBest() {
	if e.Score > e.BestScore {
		e.BestScore = e.Score
	}
}

// EndRun closes the current run. Purchases made before the next run starts
// count toward that next run.
func (e *Economy) EndRun() {
	e.RecordBest()
	e.runOver = true
}

// ResetRun clears per-run counters and keeps the session wallet.
// An active power-up keeps its remaining time when keepPowerUp is set.
func (e *Economy) ResetRun(keepPowerUp bool) {
	e.Score = 0
	e.PowerUpsBought = e.lateBuys
	e.lateBuys = 0
	e.runOver = false
	if !keepPowerUp {
		e.PowerUpRemaining = 0
	}
}
