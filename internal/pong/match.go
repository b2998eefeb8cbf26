package pong

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Side int

const (
	NoSide Side = iota
	PlayerSide
	AISide
)

func (s Side) String() string {
	switch s {
	case PlayerSide:
		return PlayerLabel
	case AISide:
		return AILabel
	default:
		return "none"
	}
}

// MatchRecord is the immutable result of a finished match.
type MatchRecord struct {
	ID          string    `json:"id" yaml:"id"`
	PlayerScore int       `json:"playerScore" yaml:"playerScore"`
	AIScore     int       `json:"aiScore" yaml:"aiScore"`
	Winner      string    `json:"winner" yaml:"winner"`
	CompletedAt time.Time `json:"date" yaml:"date"`
}

// PlayerWon reports whether the human side took the match.
func (r MatchRecord) PlayerWon() bool {
	return r.Winner == PlayerLabel
}

// WinnerLabel names the side with the higher score. Ties go to the AI.
func WinnerLabel(playerScore, aiScore int) string {
	if playerScore > aiScore {
		return PlayerLabel
	}
	return AILabel
}

// ScoreLine renders a score pair the way every view shows it.
func ScoreLine(playerScore, aiScore int) string {
	return fmt.Sprintf("%s: %d - %s: %d", PlayerLabel, playerScore, AILabel, aiScore)
}

type Match struct {
	PlayerScore  int
	AIScore      int
	WinningScore int
	Clock        TimeProvider
}

// OnScore credits one point to scorer. When that point reaches the winning
// score the finished match is returned and a new one starts at 0-0 right away.
func (m *Match) OnScore(scorer Side) (MatchRecord, bool) {
	switch scorer {
	case PlayerSide:
		m.PlayerScore++
	case AISide:
		m.AIScore++
	default:
		return MatchRecord{}, false
	}

	if m.PlayerScore < m.WinningScore && m.AIScore < m.WinningScore {
		return MatchRecord{}, false
	}

	clock := m.Clock
	if clock == nil {
		clock = SystemTime
	}
	record := MatchRecord{
		ID:          uuid.NewString(),
		PlayerScore: m.PlayerScore,
		AIScore:     m.AIScore,
		Winner:      WinnerLabel(m.PlayerScore, m.AIScore),
		CompletedAt: clock.Now(),
	}
	m.Reset()

	return record, true
}

func (m *Match) Reset() {
	m.PlayerScore = 0
	m.AIScore = 0
}
