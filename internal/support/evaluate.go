// Package support classifies cluster versions against their end-of-support dates.
package support

import (
	"github.com/aws-samples/eks-notifier/internal/domain/entity"
)

// Evaluate looks version up in table and classifies it relative to today.
// It returns false when the version is unknown to the table, which is not an error:
// new versions usually appear in clusters before they appear in the document.
func Evaluate(subject, version string, table entity.SupportWindowTable, today entity.Date) (entity.EvaluationResult, bool) {
	entry, ok := table[version]
	if !ok {
		return entity.EvaluationResult{}, false
	}

	daysLeft := today.DaysUntil(entry.End)

	return entity.EvaluationResult{
		Subject:        subject,
		Version:        version,
		DaysLeft:       daysLeft,
		Classification: Classify(daysLeft, entry.Days),
		End:            entry.End,
	}, true
}

func Classify(daysLeft, warnDays int) entity.Classification {
	switch {
	case daysLeft < 0:
		return entity.ClassificationExpired
	case daysLeft <= warnDays:
		return entity.ClassificationExpiring
	default:
		return entity.ClassificationHealthy
	}
}
