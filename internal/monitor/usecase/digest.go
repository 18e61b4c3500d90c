package usecase

import (
	"fmt"
	"html"
	"strings"

	"gatherup-api/internal/monitor"
	"gatherup-api/pkg/mailer"
)

var categoryLabels = map[string]string{
	monitor.CategoryWarmupStalled:    "Stalled warm-ups",
	monitor.CategoryReviewStalled:    "Awaiting review",
	monitor.CategoryFirstResponseSLA: "First-response SLA breaches",
	monitor.CategoryResolutionSLA:    "Resolution SLA breaches",
}

var categoryOrder = []string{
	monitor.CategoryWarmupStalled,
	monitor.CategoryReviewStalled,
	monitor.CategoryFirstResponseSLA,
	monitor.CategoryResolutionSLA,
}

// buildDigest assembles the single per-sweep email, grouping entries
// by category so one long sweep never turns into an email storm.
func buildDigest(sweep string, recipients []string, breaches []monitor.Breach) mailer.Message {
	byCategory := make(map[string][]monitor.Breach)
	for _, b := range breaches {
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString(fmt.Sprintf("<h2>Monitor digest: %s</h2>", html.EscapeString(sweep)))
	for _, cat := range categoryOrder {
		group, ok := byCategory[cat]
		if !ok {
			continue
		}
		label := categoryLabels[cat]
		if label == "" {
			label = cat
		}
		sb.WriteString(fmt.Sprintf("<h3>%s (%d)</h3><ul>", html.EscapeString(label), len(group)))
		for _, b := range group {
			sb.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(b.Body)))
		}
		sb.WriteString("</ul>")
	}
	sb.WriteString("</body></html>")

	return mailer.Message{
		To:       recipients,
		Subject:  fmt.Sprintf("[GatherUp] Monitor digest: %d new breach(es) in %s sweep", len(breaches), sweep),
		HTMLBody: sb.String(),
	}
}
