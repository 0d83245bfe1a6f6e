// meta/meta.go
package meta

// MAX_TURNS caps the number of turns a single game may last.
const MAX_TURNS = 1000

// RANKING_SIZE is the number of finished games kept in the ranking.
const RANKING_SIZE = 5

const SAVE_FILE_EXTENSION = ".save"

const RANKING_FILE_NAME = "ranking.txt"
