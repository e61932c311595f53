package app

import (
	"strconv"
	"strings"

	"healthlog/internal/domain/model"
	"healthlog/internal/domain/types"
)

// weightsAsSpeech renders a ranked weight list as natural speech, with
// "and" before the last entry and singular/plural unit wording.
func weightsAsSpeech(ranked []types.Measurement) string {
	return measurementsAsSpeech(ranked, func(m types.Measurement) string {
		unit := " pounds, "
		if m.Value == 1 {
			unit = " pound, "
		}
		return m.Name + " weighs " + strconv.FormatInt(m.Value, 10) + unit
	})
}

// heightsAsSpeech renders a ranked height list as natural speech.
func heightsAsSpeech(ranked []types.Measurement) string {
	return measurementsAsSpeech(ranked, func(m types.Measurement) string {
		unit := " inches, "
		if m.Value == 1 {
			unit = " inch, "
		}
		return m.Name + " is " + strconv.FormatInt(m.Value, 10) + unit
	})
}

func measurementsAsSpeech(ranked []types.Measurement, phrase func(types.Measurement) string) string {
	var sb strings.Builder
	for i, m := range ranked {
		if len(ranked) > 1 && i == len(ranked)-1 {
			sb.WriteString(" and ")
		}
		sb.WriteString(phrase(m))
	}
	return sb.String()
}

// metricsCard builds the numbered ranking card attached to tell responses.
func metricsCard(ranked []types.Measurement) model.Card {
	var sb strings.Builder
	for i, m := range ranked {
		sb.WriteString("No. ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(" - ")
		sb.WriteString(m.Name)
		sb.WriteString(" : ")
		sb.WriteString(strconv.FormatInt(m.Value, 10))
		sb.WriteString("\n")
	}
	return model.Card{Title: "Health Metrics", Content: sb.String()}
}
