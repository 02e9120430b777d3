// Package analytics computes team engagement metrics over a trailing
// window of check-ins. Everything here is a pure function of its
// inputs; handlers load the rows and hand them over.
package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/google/uuid"
)

type MemberStat struct {
	MemberID    uuid.UUID `json:"memberId"`
	Submitted   bool      `json:"submitted"`
	WordCount   int       `json:"wordCount"`
	HasBlockers bool      `json:"hasBlockers"`
}

type Report struct {
	TeamID       uuid.UUID    `json:"teamId"`
	Period       time.Time    `json:"period"`
	WindowDays   int          `json:"windowDays"`
	SubmitRate   int          `json:"submitRate"` // percentage, rounded
	DelayRate    int          `json:"delayRate"`  // 100 - SubmitRate
	AvgWordCount float64      `json:"avgWordCount"`
	RiskCount    int          `json:"riskCount"`
	MemberStats  []MemberStat `json:"memberStats"`
}

// WordCount counts whitespace-separated tokens across every populated
// text field of a check-in, regardless of template relevance.
func WordCount(c *models.CheckIn) int {
	return len(strings.Fields(strings.Join(c.TextValues(), " ")))
}

// Aggregate computes the report for one team. Per member, only the
// latest check-in inside the window contributes word count and blocker
// state. Zero members or an empty window yield zero rates, never an
// error.
func Aggregate(teamID uuid.UUID, members []models.Member, checkIns []models.CheckIn, windowDays int, now time.Time) Report {
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	recent := make([]models.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if !c.Date.Before(cutoff) {
			recent = append(recent, c)
		}
	}

	stats := make([]MemberStat, 0, len(members))
	submitted := 0
	totalWords := 0
	riskCount := 0

	for _, m := range members {
		latest := latestFor(recent, m.ID)
		stat := MemberStat{MemberID: m.ID}
		if latest != nil {
			stat.Submitted = true
			stat.WordCount = WordCount(latest)
			stat.HasBlockers = strings.TrimSpace(latest.Field("blockers")) != ""
			submitted++
			totalWords += stat.WordCount
			if stat.HasBlockers {
				riskCount++
			}
		}
		stats = append(stats, stat)
	}

	// An empty roster has nobody to be late: both rates are 0, not a
	// 0/100 split.
	submitRate := 0
	delayRate := 0
	avgWords := 0.0
	if len(members) > 0 {
		submitRate = int(math.Round(float64(submitted) / float64(len(members)) * 100))
		delayRate = 100 - submitRate
		avgWords = float64(totalWords) / float64(len(members))
	}

	return Report{
		TeamID:       teamID,
		Period:       now,
		WindowDays:   windowDays,
		SubmitRate:   submitRate,
		DelayRate:    delayRate,
		AvgWordCount: avgWords,
		RiskCount:    riskCount,
		MemberStats:  stats,
	}
}

// latestFor picks the member's most recent check-in from the windowed
// slice, preferring the later slice position on equal dates.
func latestFor(checkIns []models.CheckIn, memberID uuid.UUID) *models.CheckIn {
	var latest *models.CheckIn
	for i := range checkIns {
		c := &checkIns[i]
		if c.MemberID != memberID {
			continue
		}
		if latest == nil || !c.Date.Before(latest.Date) {
			latest = c
		}
	}
	return latest
}
