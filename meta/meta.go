// meta/meta.go
package meta

// NUM_PLAYERS defines the number of players in a game.
const NUM_PLAYERS = 2

// NUM_BOXES defines the number of boxes in a game.
const NUM_BOXES = 4
