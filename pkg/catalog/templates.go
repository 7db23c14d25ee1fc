package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Template is a named, pre-written use-case description paired with a target
// framework. Picking one in the UI fills the prompt box with its description.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Framework   Framework `json:"framework"`
	Description string    `json:"description"`
}

var templates = []Template{
	{
		ID:          "langgraph-customer-support",
		Name:        "Customer Support",
		Framework:   LangGraph,
		Description: "Create a customer support workflow with initial triage and escalation",
	},
	{
		ID:          "langgraph-document-processing",
		Name:        "Document Processing",
		Framework:   LangGraph,
		Description: "Build a document processing pipeline with validation and approval stages",
	},
	{
		ID:          "crewai-research-team",
		Name:        "Research Team",
		Framework:   CrewAI,
		Description: "Set up a research team with analyst and writer roles",
	},
	{
		ID:          "crewai-marketing-crew",
		Name:        "Marketing Crew",
		Framework:   CrewAI,
		Description: "Create a marketing team for content creation and social media",
	},
	{
		ID:          "autogen-code-review",
		Name:        "Code Review",
		Framework:   AutoGen,
		Description: "Build a code review system with reviewer and QA agents",
	},
	{
		ID:          "autogen-data-analysis",
		Name:        "Data Analysis",
		Framework:   AutoGen,
		Description: "Create a data analysis system with analyst and visualization agents",
	},
}

// Templates returns every quick-start template.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplatesByFramework returns the quick-start templates for one framework.
func TemplatesByFramework(f Framework) []Template {
	var out []Template
	for _, t := range templates {
		if t.Framework == f {
			out = append(out, t)
		}
	}
	return out
}

// TemplateByID looks a template up by its id.
func TemplateByID(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}
