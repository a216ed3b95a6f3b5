package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Date is a calendar day, stored as midnight UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) Date {
	year, month, dayOfMonth := t.UTC().Date()

	return NewDate(year, month, dayOfMonth)
}

// ParseDate accepts YYYY-MM-DD and, for leniency, a full RFC 3339 timestamp.
func ParseDate(value string) (Date, error) {
	ret, err := time.Parse(time.DateOnly, value)
	if err == nil {
		return Date{ret}, nil
	}

	ts, tsErr := time.Parse(time.RFC3339, value)
	if tsErr != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	return DateOf(ts), nil
}

// DaysUntil returns the whole number of days from d to other, negative when other is in the past.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time) / day)
}

func (d Date) AddDays(days int) Date {
	return Date{d.AddDate(0, 0, days)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("date is not a string: %w", err)
	}

	ret, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = ret

	return nil
}

type SupportWindowEntry struct {
	Version string
	End     Date
	Days    int
}

// SupportWindowTable maps a cluster version ("1.29") to its support window.
type SupportWindowTable map[string]SupportWindowEntry

type Classification string

const (
	ClassificationExpired  Classification = "EXPIRED"
	ClassificationExpiring Classification = "EXPIRING"
	ClassificationHealthy  Classification = "HEALTHY"
)

type EvaluationResult struct {
	Subject        string
	Version        string
	DaysLeft       int
	Classification Classification
	End            Date
}
