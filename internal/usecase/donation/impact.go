package usecase

import (
	"math"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round2(f float64) float64 { return math.Round(f*100) / 100 }

// growthDate picks the most meaningful date for the histogram: when the
// trees went into the ground, else when the money arrived, else when the
// order was approved, else when it was created.
func growthDate(row domain.GrowthRow) time.Time {
	switch {
	case row.PlantationDate != nil:
		return *row.PlantationDate
	case row.PaidAt != nil:
		return *row.PaidAt
	case row.ApprovedAt != nil:
		return *row.ApprovedAt
	default:
		return row.CreatedAt
	}
}

// buildMonthlyGrowth buckets paid donations into the last six calendar
// months, oldest first. Rows outside the window are dropped.
func buildMonthlyGrowth(rows []domain.GrowthRow, today time.Time) ([]donationdto.MonthlyGrowth, int64) {
	type bucket struct{ year int; month time.Month }

	months := make([]bucket, 0, 6)
	cursor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	for i := 0; i < 6; i++ {
		months = append(months, bucket{cursor.Year(), cursor.Month()})
		cursor = cursor.AddDate(0, 1, 0)
	}

	totals := make(map[bucket]int64, 6)
	for _, row := range rows {
		at := growthDate(row).UTC()
		key := bucket{at.Year(), at.Month()}
		trees := row.NumberOfTrees
		if row.TreesPlantedCount != nil && *row.TreesPlantedCount > 0 {
			trees = *row.TreesPlantedCount
		}
		totals[key] += trees
	}

	growth := make([]donationdto.MonthlyGrowth, 0, 6)
	var peak int64
	for _, m := range months {
		trees := totals[m]
		if trees > peak {
			peak = trees
		}
		growth = append(growth, donationdto.MonthlyGrowth{
			Month: time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			Trees: trees,
		})
	}
	return growth, peak
}

func emptyImpact() *donationdto.ImpactOutput {
	growth, _ := buildMonthlyGrowth(nil, time.Now().UTC())
	return &donationdto.ImpactOutput{
		Growth:     donationdto.ImpactGrowth{MonthlyGrowth: growth},
		Commitment: impactCommitment(),
		Benchmarks: impactBenchmarks(),
	}
}

func impactCommitment() donationdto.ImpactCommitment {
	return donationdto.ImpactCommitment{
		OperationsSharePercent: 10,
		PlantationSharePercent: 90,
		TransparencyPercent:    100,
		MonitoringSupport:      "24/7",
	}
}

func impactBenchmarks() donationdto.ImpactBenchmarks {
	return donationdto.ImpactBenchmarks{
		CommunitySurvivalRatePercent: 85,
		IndustrySurvivalRatePercent:  60,
	}
}

// Impact aggregates the public figures over paid donations. A not-yet
// migrated schema degrades to an all-zero payload instead of erroring, so
// the landing page always renders.
func (uc *DefaultDonationUsecase) Impact() (*donationdto.ImpactOutput, error) {
	totals, err := uc.DonationRepo.AggregateImpact()
	if err != nil {
		if domain.KindOf(err) == domain.KindNotReady {
			return emptyImpact(), nil
		}
		return nil, err
	}

	rows, err := uc.DonationRepo.ListPaidGrowthRows()
	if err != nil {
		if domain.KindOf(err) == domain.KindNotReady {
			return emptyImpact(), nil
		}
		return nil, err
	}

	growth, peak := buildMonthlyGrowth(rows, time.Now().UTC())

	co2KgYear := float64(totals.TreesTotal) * uc.Builder.CarbonOffsetPerTree
	approvalRate := 0.0
	if totals.PaidCount > 0 {
		approvalRate = round1(float64(totals.ApprovedCount) / float64(totals.PaidCount) * 100)
	}

	return &donationdto.ImpactOutput{
		Metrics: donationdto.ImpactMetrics{
			TreesPlanted:         totals.TreesTotal,
			ApprovedTreesPlanted: totals.ApprovedTreesTotal,
			CO2OffsetTonnes:      round2(co2KgYear / 1000),
			CO2OffsetTonnesYear:  round2(co2KgYear / 1000),
			CO2OffsetKgYear:      round2(co2KgYear),
			DonationsINRTotal:    round2(float64(totals.AmountPaiseTotal) / 100),
			ActiveDonors:         totals.DistinctDonors,
			GlobalDonors:         totals.DistinctDonors,
			ApprovedProjects:     totals.ApprovedCount,
			TotalProjects:        totals.PaidCount,
			ApprovalRatePercent:  approvalRate,
		},
		Growth: donationdto.ImpactGrowth{
			MonthlyGrowth:    growth,
			PeakMonthlyTrees: peak,
		},
		Commitment: impactCommitment(),
		Benchmarks: impactBenchmarks(),
	}, nil
}
