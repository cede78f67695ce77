package domain

import (
	"fmt"
	"time"
)

// Date representa um dia civil (sem hora), serializado como YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate cria uma Date normalizada para meia-noite
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// AddDays retorna uma nova Date deslocada em n dias
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time.AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(time.DateOnly))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("erro ao converter data %q: %w", s, err)
	}
	*d = Date{t}
	return nil
}
