package service

import (
	"fmt"

	apperrors "performance-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const totalWeightage = 100

// WeightageInput assigns a weightage to one KRA
type WeightageInput struct {
	KRAID     uuid.UUID `json:"kra_id" validate:"required"`
	Weightage int       `json:"weightage" validate:"min=0,max=100"`
}

// ValidateWeightages checks that every KRA appears exactly once with 0..100 and the total is 100
func ValidateWeightages(kraIDs []uuid.UUID, inputs []WeightageInput) error {
	known := make(map[uuid.UUID]bool, len(kraIDs))
	for _, id := range kraIDs {
		known[id] = true
	}

	seen := make(map[uuid.UUID]bool, len(inputs))
	sum := 0
	for _, in := range inputs {
		if !known[in.KRAID] {
			return apperrors.NewValidationError("kra_id", fmt.Sprintf("unknown KRA %s", in.KRAID))
		}
		if seen[in.KRAID] {
			return apperrors.NewValidationError("kra_id", fmt.Sprintf("KRA %s appears more than once", in.KRAID))
		}
		if in.Weightage < 0 || in.Weightage > totalWeightage {
			return apperrors.NewValidationError("weightage", "must be between 0 and 100")
		}
		seen[in.KRAID] = true
		sum += in.Weightage
	}

	if len(seen) != len(known) {
		return apperrors.NewValidationError("weightages", "every KRA must be given a weightage")
	}
	if sum != totalWeightage {
		return apperrors.ErrInvalidWeightageTotal
	}
	return nil
}

// KPIRating is one rated KPI and the KRA it belongs to
type KPIRating struct {
	KRAID  uuid.UUID
	Rating int
}

// WeightedAverage averages ratings per KRA, then weights the KRA means.
// KRAs without ratings or with zero weightage are left out. The result has two decimals.
func WeightedAverage(ratings []KPIRating, weightages map[uuid.UUID]int) decimal.Decimal {
	type acc struct {
		sum   int64
		count int64
	}
	perKRA := make(map[uuid.UUID]*acc)
	order := make([]uuid.UUID, 0)
	for _, r := range ratings {
		if r.Rating < 1 {
			continue
		}
		a, ok := perKRA[r.KRAID]
		if !ok {
			a = &acc{}
			perKRA[r.KRAID] = a
			order = append(order, r.KRAID)
		}
		a.sum += int64(r.Rating)
		a.count++
	}

	weighted := decimal.Zero
	totalWeight := decimal.Zero
	for _, kraID := range order {
		w := weightages[kraID]
		if w <= 0 {
			continue
		}
		a := perKRA[kraID]
		mean := decimal.NewFromInt(a.sum).Div(decimal.NewFromInt(a.count))
		weight := decimal.NewFromInt(int64(w))
		weighted = weighted.Add(mean.Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}

	if totalWeight.IsZero() {
		return decimal.Zero
	}
	return weighted.Div(totalWeight).Round(2)
}

// RatingBucket is a band of the overall rating
type RatingBucket string

const (
	BucketUnsatisfactory      RatingBucket = "unsatisfactory"
	BucketNeedsImprovement    RatingBucket = "needs_improvement"
	BucketMeetsExpectations   RatingBucket = "meets_expectations"
	BucketExceedsExpectations RatingBucket = "exceeds_expectations"
	BucketOutstanding         RatingBucket = "outstanding"
)

var (
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
	four  = decimal.NewFromInt(4)
	five  = decimal.NewFromInt(5)
)

// BucketFor maps an average rating to its band. Averages below 1 are unrated.
func BucketFor(avg decimal.Decimal) (RatingBucket, bool) {
	switch {
	case avg.LessThan(decimal.NewFromInt(1)):
		return "", false
	case avg.LessThan(two):
		return BucketUnsatisfactory, true
	case avg.LessThan(three):
		return BucketNeedsImprovement, true
	case avg.LessThan(four):
		return BucketMeetsExpectations, true
	case avg.LessThan(five):
		return BucketExceedsExpectations, true
	default:
		return BucketOutstanding, true
	}
}
