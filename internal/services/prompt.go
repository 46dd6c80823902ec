package services

import (
	"fmt"
	"os"
	"strings"

	_ "embed"

	"resume-screener/internal/models"
)

//go:embed templates/markdown.tmpl
var markdownTemplate string

//go:embed templates/structured.tmpl
var structuredTemplate string

// toolPreamble is prepended when model tools are enabled so the model grounds
// date math instead of guessing.
const toolPreamble = "SYSTEM INSTRUCTION: \n" +
	"1. DATE CHECK: First, use the Google Search tool to find 'current date today'. " +
	"Print this date clearly at the top of your response.\n" +
	"2. CALCULATION: If you need to calculate years of experience (e.g., Jan 2020 to Present), or any other calculations " +
	"use the Code Interpreter (Python) to get the exact duration. Do not guess.\n" +
	"3. EVALUATION: Use the fetched date as the baseline for 'Present' roles.\n" +
	"4. Use the arsenal of tools, don't assume." +
	"---------------------------------------------------\n"

// PromptBuilder substitutes a job description and a candidate pool into the
// instruction template of the selected output mode. The template text is
// configuration, not logic: deployments can swap it wholesale via an override
// file.
type PromptBuilder struct {
	template     string
	toolsEnabled bool
}

func NewPromptBuilder(mode models.OutputMode, overridePath string, toolsEnabled bool) (*PromptBuilder, error) {
	template := markdownTemplate
	if mode == models.ModeStructured {
		template = structuredTemplate
	}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt template override: %w", err)
		}
		template = string(data)
	}

	return &PromptBuilder{
		template:     template,
		toolsEnabled: toolsEnabled,
	}, nil
}

// Compose builds the full prompt. Candidates are serialized in input order;
// no semantic validation happens here; an empty pool yields a degenerate but
// well-formed prompt, and rejecting that case is the orchestrator's job.
func (pb *PromptBuilder) Compose(jobDescription string, candidates []models.CandidateRecord) string {
	var pool strings.Builder
	for _, candidate := range candidates {
		status := "[ACTIVE]"
		if candidate.IsArchived {
			status = "[ARCHIVED]"
		}
		pool.WriteString(fmt.Sprintf(
			"\n--- RESUME: %s, path_to_resume: %s, %s ---\n%s\n",
			candidate.Name, candidate.Path, status, candidate.Content,
		))
	}

	prompt := strings.ReplaceAll(pb.template, "{{JD_TEXT}}", jobDescription)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_POOL}}", pool.String())

	if pb.toolsEnabled {
		prompt = toolPreamble + prompt
	}

	return prompt
}
