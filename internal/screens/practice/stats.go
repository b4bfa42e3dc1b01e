package practice

import (
	"time"
)

// Stats captures the typing for one session.
type Stats struct {
	StartedAt time.Time
	EndedAt   time.Time

	Lines     int
	Attempts  int
	Correct   int
	Incorrect int
}

// Record scores one submitted attempt at target. Characters are compared
// by position; missing or extra characters count as incorrect. It reports
// whether the attempt matched the line.
func (s *Stats) Record(target, typed string) bool {
	s.Attempts++
	correct, incorrect := compareRunes(target, typed)
	s.Correct += correct
	s.Incorrect += incorrect
	if incorrect == 0 {
		s.Lines++
		return true
	}
	return false
}

// Accuracy is the share of correct characters over every attempt, 1 when
// nothing was typed.
func (s Stats) Accuracy() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 1
	}
	return float64(s.Correct) / float64(total)
}

// Duration is the time from the first keystroke to the last line.
func (s Stats) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// WPM is words per minute using five correct characters per word.
func (s Stats) WPM() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.Correct) / 5 / d.Minutes()
}

func compareRunes(target, typed string) (correct, incorrect int) {
	t, y := []rune(target), []rune(typed)
	for i := 0; i < max(len(t), len(y)); i++ {
		if i < len(t) && i < len(y) && t[i] == y[i] {
			correct++
		} else {
			incorrect++
		}
	}
	return correct, incorrect
}

// firstMistake returns the index of the first rune of typed that differs
// from target, or -1 when typed is a prefix of target.
func firstMistake(target, typed string) int {
	t, y := []rune(target), []rune(typed)
	for i := range y {
		if i >= len(t) || t[i] != y[i] {
			return i
		}
	}
	return -1
}
