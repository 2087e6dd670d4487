package game

// Player represents a game player, accumulating credited box scores
// across turns. Player A has ID 1, player B has ID 2.
type Player struct {
	ID    int
	Score float64
}

// AddScore credits a turn's box score to the player.
func (p *Player) AddScore(score float64) {
	p.Score += score
}
