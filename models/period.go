// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the layout of the date query parameters accepted by the
// dashboard endpoints.
const DateLayout = time.DateOnly

// Period is a half-open reporting interval [From, To).
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewPeriod builds a period from two calendar days. Both days are inclusive:
// the exclusive upper bound is the midnight following toDay.
func NewPeriod(fromDay, toDay time.Time) Period {
	return Period{
		From: startOfDay(fromDay),
		To:   startOfDay(toDay).AddDate(0, 0, 1),
	}
}

// CurrentMonth returns the period from the first day of now's month up to
// and including now's day.
func CurrentMonth(now time.Time) Period {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return NewPeriod(first, now)
}

// Key returns a compact representation used in cache keys and logs.
func (p Period) Key() string {
	return p.From.Format(DateLayout) + "_" + p.To.Format(DateLayout)
}

// EndOfDay returns the exclusive bound of the day that contains t.
func EndOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
