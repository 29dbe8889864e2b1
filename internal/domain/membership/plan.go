package membership

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
)

type PlanType string

const (
	PlanSilver   PlanType = "silver"
	PlanGold     PlanType = "gold"
	PlanPlatinum PlanType = "platinum"
)

var PlanTypes = []PlanType{PlanSilver, PlanGold, PlanPlatinum}

var (
	ErrInvalidPlan     = httperr.Validation("Please choose a valid membership type.")
	ErrInvalidDuration = httperr.Validation("Please choose a valid duration.")
)

func ParsePlanType(raw string) (PlanType, error) {
	switch p := PlanType(strings.ToLower(strings.TrimSpace(raw))); p {
	case PlanSilver, PlanGold, PlanPlatinum:
		return p, nil
	}
	return "", ErrInvalidPlan
}

func (p PlanType) Label() string {
	switch p {
	case PlanSilver:
		return "Silver"
	case PlanGold:
		return "Gold"
	case PlanPlatinum:
		return "Platinum"
	}
	return string(p)
}

// ===============================
// Price tables
// ===============================
//
// Selection from the dashboard and the checkout page price plans differently.

// BasePricePerMonth is what plan selection charges per month of duration.
func (p PlanType) BasePricePerMonth() float64 {
	switch p {
	case PlanSilver:
		return 1000
	case PlanGold:
		return 2000
	case PlanPlatinum:
		return 3000
	}
	return 0
}

type CheckoutOffer struct {
	Plan           PlanType
	Label          string
	Tagline        string
	Price          float64
	DurationMonths int
}

// CheckoutOffer is the fixed one-month package sold on the checkout page.
func (p PlanType) CheckoutOffer() CheckoutOffer {
	offer := CheckoutOffer{Plan: p, Label: p.Label(), DurationMonths: 1}
	switch p {
	case PlanSilver:
		offer.Price = 1999
		offer.Tagline = "Perfect if you're just starting out"
	case PlanGold:
		offer.Price = 2999
		offer.Tagline = "For regular gym-goers who want more"
	case PlanPlatinum:
		offer.Price = 4499
		offer.Tagline = "For serious athletes & transformation goals"
	}
	return offer
}

func (p PlanType) CheckoutPrice() float64 {
	return p.CheckoutOffer().Price
}

// ===============================
// Durations
// ===============================

var Durations = []int{1, 3, 6, 12}

func ParseDuration(raw string) (int, error) {
	months, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidDuration
	}
	for _, d := range Durations {
		if d == months {
			return months, nil
		}
	}
	return 0, ErrInvalidDuration
}

// EndDate counts 30 days per month, ignoring calendar month lengths.
func EndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, 0, 30*months)
}

// ===============================
// Quotes
// ===============================

type Quote struct {
	Plan           PlanType
	DurationMonths int
	StartDate      time.Time
	EndDate        time.Time
	Amount         float64
}

// QuoteSelection prices a dashboard selection: base price times months.
func QuoteSelection(p PlanType, months int, start time.Time) Quote {
	return Quote{
		Plan:           p,
		DurationMonths: months,
		StartDate:      start,
		EndDate:        EndDate(start, months),
		Amount:         p.BasePricePerMonth() * float64(months),
	}
}

// QuoteCheckout prices a checkout purchase from the fixed checkout table.
func QuoteCheckout(p PlanType, start time.Time) Quote {
	offer := p.CheckoutOffer()
	return Quote{
		Plan:           p,
		DurationMonths: offer.DurationMonths,
		StartDate:      start,
		EndDate:        EndDate(start, offer.DurationMonths),
		Amount:         offer.Price,
	}
}
