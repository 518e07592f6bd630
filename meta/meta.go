// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of own-move/reply pairs searched per turn.
const DEFAULT_DEPTH = 2

// LOW_TIME_MS defines the remaining time under which the player searches at LOW_TIME_DEPTH.
const LOW_TIME_MS = 5000

// LOW_TIME_DEPTH defines the search depth used when time is short.
const LOW_TIME_DEPTH = 1

// MAX_TURNS caps the number of turns, passes included, in a local game.
const MAX_TURNS = 130

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10
