// Package adk talks to LLM providers to draft translation tables. Drafts are
// written to override files for review; nothing here runs while reports are built.
package adk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/translation"
)

const defaultBatchSize = 20

// Drafter asks a model for translations of source messages.
type Drafter struct {
	llm       LLMProvider
	batchSize int
	log       *logrus.Entry
}

func NewDrafter(llm LLMProvider, batchSize int) *Drafter {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Drafter{llm: llm, batchSize: batchSize, log: logger.For("drafter")}
}

// Draft returns proposed translations of messages into lang. Answers for messages
// that were not asked for, and empty answers, are dropped. progress, when set, is
// called after each batch.
func (d *Drafter) Draft(ctx context.Context, lang report.Language, messages []string, progress func(done, total int)) (translation.Table, error) {
	if lang.IsSource() {
		return nil, fmt.Errorf("%s is the source language", lang)
	}
	out := make(translation.Table, len(messages))
	system := Message{Role: "system", Content: GetTranslatePrompt(lang)}

	for start := 0; start < len(messages); start += d.batchSize {
		end := start + d.batchSize
		if end > len(messages) {
			end = len(messages)
		}
		batch := messages[start:end]

		payload, err := json.Marshal(batch)
		if err != nil {
			return nil, err
		}
		d.log.WithField("messages", len(batch)).Debug("Requesting translations")

		resp, err := d.llm.GenerateResponse(ctx, []Message{system, {Role: "user", Content: string(payload)}})
		if err != nil {
			return nil, fmt.Errorf("draft batch %d-%d: %w", start, end, err)
		}
		answers, err := parseAnswer(resp)
		if err != nil {
			return nil, fmt.Errorf("draft batch %d-%d: %w", start, end, err)
		}

		for _, m := range batch {
			v := strings.TrimSpace(answers[m])
			if v == "" {
				d.log.WithField("message", m).Warn("Model returned no translation")
				continue
			}
			out[m] = v
		}
		if progress != nil {
			progress(end, len(messages))
		}
	}
	return out, nil
}

// parseAnswer decodes a JSON object reply, tolerating a markdown code fence.
func parseAnswer(resp string) (map[string]string, error) {
	s := strings.TrimSpace(resp)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	var answers map[string]string
	if err := json.Unmarshal([]byte(s), &answers); err != nil {
		return nil, fmt.Errorf("model reply is not a JSON object: %w", err)
	}
	return answers, nil
}
