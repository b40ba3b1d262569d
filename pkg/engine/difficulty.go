package engine

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the search depth used for a computer player.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 3
	Hard   Difficulty = 5
	Expert Difficulty = 7
)

const DefaultMoveTime = 5 * time.Second

func (d Difficulty) Depth() int {
	return int(d)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("depth%d", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
