// Package lifecycle computes contract expiration and renewal state for
// intern records. All functions are pure: they take plain values, touch
// no storage, and return defined sentinels for missing or malformed
// input instead of errors.
package lifecycle

import (
	"strings"
	"time"
)

const (
	// ContractCeilingMonths is the legal hard stop for an internship
	// contract, independent of any per-university rule.
	ContractCeilingMonths = 24

	// DefaultCycleMonths applies when no rule matches the university.
	DefaultCycleMonths = 6

	// renewalCadenceMonths is the fixed interval between renewals inside
	// the 24-month ceiling. The per-university cycle only decides whether
	// a contract renews at all (>= 24 months means a single term).
	renewalCadenceMonths = 6

	// DefaultUpcomingWindowDays is the fallback for the configurable
	// upcoming-renewal warning window.
	DefaultUpcomingWindowDays = 30
)

// Rule maps a university keyword to a contract cycle length in months.
type Rule struct {
	Keyword string
	Months  int
}

// ResolveCycleMonths resolves the effective cycle length for a
// university name. Matching is case-insensitive substring containment of
// the keyword in the name; when several keywords match, the longest
// duration wins, so a specific 24-month rule overrides an incidental
// shorter match. No match (or empty input) falls back to the default.
// The result is always within [1, ContractCeilingMonths].
func ResolveCycleMonths(university string, rules []Rule) int {
	if strings.TrimSpace(university) == "" {
		return DefaultCycleMonths
	}
	name := strings.ToUpper(university)

	months := 0
	for _, r := range rules {
		keyword := strings.ToUpper(strings.TrimSpace(r.Keyword))
		if keyword == "" || r.Months < 1 {
			continue
		}
		if strings.Contains(name, keyword) && r.Months > months {
			months = r.Months
		}
	}
	if months == 0 {
		return DefaultCycleMonths
	}
	if months > ContractCeilingMonths {
		months = ContractCeilingMonths
	}
	return months
}

// FinalExpiration returns admission + 24 months, the authoritative end of
// the contract. Renewals and university rules never move it.
func FinalExpiration(admission *time.Time) *time.Time {
	if admission == nil {
		return nil
	}
	exp := AddMonths(*admission, ContractCeilingMonths)
	return &exp
}

// Status classifies how close a contract is to its final expiration.
type Status int

const (
	StatusNoDate Status = iota
	StatusExpired
	StatusUpcoming
	StatusOK
)

func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "Vencido"
	case StatusUpcoming:
		return "Venc.Proximo"
	case StatusOK:
		return "OK"
	default:
		return "SEM DATA"
	}
}

// ClassifyStatus buckets the expiration date relative to today. The
// upcoming window is closed on both ends: delta == windowDays still
// counts as upcoming.
func ClassifyStatus(expiration *time.Time, windowDays int, today time.Time) Status {
	if expiration == nil {
		return StatusNoDate
	}
	delta := daysBetween(*expiration, today)
	switch {
	case delta < 0:
		return StatusExpired
	case delta <= windowDays:
		return StatusUpcoming
	default:
		return StatusOK
	}
}

// RenewalKind tags the outcome of the next-renewal computation.
type RenewalKind int

const (
	// RenewalUnknown means the admission date is missing or unparseable.
	RenewalUnknown RenewalKind = iota
	// RenewalSingleContract means the cycle covers the whole 24-month
	// ceiling, so there are no intermediate renewals.
	RenewalSingleContract
	// RenewalContractClosed means the 24-month window has fully elapsed.
	RenewalContractClosed
	// RenewalContractEnding means the next nominal renewal would pass the
	// ceiling; the contract runs to its final expiration instead.
	RenewalContractEnding
	// RenewalOverdue means a renewal was due but never recorded.
	RenewalOverdue
	// RenewalDue carries the concrete date the contract must be renewed by.
	RenewalDue
)

// RenewalLabel is the "what happens next" answer for one contract:
// either a concrete renew-by date or a terminal state.
type RenewalLabel struct {
	Kind RenewalKind
	Date time.Time // valid only when Kind == RenewalDue
}

// String renders the label the way the tracking sheet displays it.
func (l RenewalLabel) String() string {
	switch l.Kind {
	case RenewalSingleContract:
		return "Contrato Único"
	case RenewalContractClosed:
		return "Contrato Encerrado"
	case RenewalContractEnding:
		return "Término do Contrato"
	case RenewalOverdue:
		return "Renovação Pendente"
	case RenewalDue:
		return l.Date.Format(DisplayLayout)
	default:
		return ""
	}
}

// NextRenewal computes the next renewal event for a contract.
//
// The branches are ordered: a missing admission date wins over
// everything, a single-term cycle wins over a closed contract, and the
// ceiling check runs before the cadence arithmetic. The renewal base is
// the last recorded renewal, or the admission date when none exists.
func NextRenewal(admission, lastRenewal *time.Time, university string, rules []Rule, asOf time.Time) RenewalLabel {
	if admission == nil {
		return RenewalLabel{Kind: RenewalUnknown}
	}

	if ResolveCycleMonths(university, rules) >= ContractCeilingMonths {
		return RenewalLabel{Kind: RenewalSingleContract}
	}

	ceiling := AddMonths(*admission, ContractCeilingMonths)
	if daysBetween(ceiling, asOf) < 0 {
		return RenewalLabel{Kind: RenewalContractClosed}
	}

	base := *admission
	if lastRenewal != nil {
		base = *lastRenewal
	}
	next := AddMonths(base, renewalCadenceMonths)

	if daysBetween(next, ceiling) > 0 {
		return RenewalLabel{Kind: RenewalContractEnding}
	}
	if daysBetween(next, asOf) < 0 {
		return RenewalLabel{Kind: RenewalOverdue}
	}
	return RenewalLabel{Kind: RenewalDue, Date: next}
}
