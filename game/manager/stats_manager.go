package manager

import (
	"github.com/google/uuid"
)

// GameRecord is one finished game, tagged with its own id.
type GameRecord struct {
	ID    string
	Score int
	Won   bool
}

// StatsManager keeps the play records of one process run. Records live
// and die with the session: nothing is written to disk.
type StatsManager struct {
	sessionID    string
	highScore    int
	scoreHistory []GameRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		sessionID:    uuid.New().String(),
		scoreHistory: make([]GameRecord, 0),
	}
}

// SessionID returns the id tagging this session's records.
func (sm *StatsManager) SessionID() string {
	return sm.sessionID
}

// UpdateScore raises the session high score when score beats it.
func (sm *StatsManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// AddToHistory records a finished game under a fresh id.
func (sm *StatsManager) AddToHistory(score int, won bool) {
	sm.scoreHistory = append(sm.scoreHistory, GameRecord{
		ID:    uuid.New().String(),
		Score: score,
		Won:   won,
	})
}

func (sm *StatsManager) GetHighScore() int {
	return sm.highScore
}

// GetGamesPlayed returns the number of finished games.
func (sm *StatsManager) GetGamesPlayed() int {
	return len(sm.scoreHistory)
}

// GetScoreHistory returns a copy of the finished-game records in order.
func (sm *StatsManager) GetScoreHistory() []GameRecord {
	history := make([]GameRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}
