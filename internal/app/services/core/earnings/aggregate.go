package earnings

import (
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"

	"github.com/shopspring/decimal"
)

var (
	doctorShare   = decimal.RequireFromString(constvars.DoctorShareRatio)
	hospitalShare = decimal.RequireFromString(constvars.HospitalShareRatio)
)

// Aggregate sums ratio of the fee of every appointment accepted by match.
// Breakdown entries are grouped by key and keep the order in which each
// label first appears.
func Aggregate(
	appointments []models.Appointment,
	match func(appointment *models.Appointment) bool,
	ratio decimal.Decimal,
	key func(appointment *models.Appointment) string,
) models.Earnings {
	var (
		count  int
		gross  = decimal.Zero
		total  = decimal.Zero
		labels []string
		sums   = make(map[string]decimal.Decimal)
	)

	for i := range appointments {
		appointment := &appointments[i]
		if !match(appointment) {
			continue
		}

		fee := decimal.NewFromFloat(appointment.Fee)
		share := fee.Mul(ratio)
		count++
		gross = gross.Add(fee)
		total = total.Add(share)

		label := key(appointment)
		if _, seen := sums[label]; !seen {
			labels = append(labels, label)
			sums[label] = decimal.Zero
		}
		sums[label] = sums[label].Add(share)
	}

	breakdown := make([]models.EarningsEntry, 0, len(labels))
	for _, label := range labels {
		breakdown = append(breakdown, models.EarningsEntry{
			Label:  label,
			Amount: sums[label].InexactFloat64(),
		})
	}

	return models.Earnings{
		Count:      count,
		GrossFees:  gross.InexactFloat64(),
		TotalShare: total.InexactFloat64(),
		Breakdown:  breakdown,
	}
}
