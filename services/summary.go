package services

import (
	"fmt"
	"io"
	"strings"

	"salon-verifier/models"
	"salon-verifier/utils"
)

const (
	maxNotFoundSamples = 5
	maxBarWidth        = 40
)

type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

func (s *SummaryService) Generate(records []models.VerificationRecord) *models.Summary {
	summary := &models.Summary{
		ByStatus:   make(map[models.Status]int),
		ByPlatform: make(map[models.Platform]int),
	}

	summary.TotalRows = len(records)
	for _, r := range records {
		summary.ByStatus[r.Status]++
		for _, p := range r.FoundOn {
			summary.ByPlatform[p]++
		}
		if r.PlatformCount() > 1 {
			summary.MultiPlatform++
		}
		if r.Status == models.StatusNotFound && len(summary.NotFoundSamples) < maxNotFoundSamples {
			summary.NotFoundSamples = append(summary.NotFoundSamples, r.BusinessName)
		}
	}

	s.logger.Debug("[summary] %d rows, %d verified", summary.TotalRows, summary.ByStatus[models.StatusVerified])
	return summary
}

func (s *SummaryService) Print(w io.Writer, r *models.Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  🔍 LISTING VERIFICATION SUMMARY\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Status\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Listings checked : \033[1m%d\033[0m\n", r.TotalRows)
	for _, st := range []models.Status{models.StatusVerified, models.StatusMaybe, models.StatusNotFound} {
		fmt.Fprintf(w, "  %-16s : \033[1m%d\033[0m\n", st, r.ByStatus[st])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Platforms\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, p := range models.Platforms {
		count := r.ByPlatform[p]
		bar := strings.Repeat("█", min(count, maxBarWidth))
		fmt.Fprintf(w, "  %-12s %s (%d)\n", p, bar, count)
	}
	fmt.Fprintf(w, "  On more than one platform : %d\n", r.MultiPlatform)
	fmt.Fprintln(w)

	if len(r.NotFoundSamples) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Not Found (first %d)\033[0m\n", len(r.NotFoundSamples))
		fmt.Fprintf(w, "  %s\n", thin)
		for i, name := range r.NotFoundSamples {
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %s\n", i+1, utils.Truncate(name, 48))
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}
