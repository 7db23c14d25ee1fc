package prompt

import "github.com/agentfactory/backend/pkg/catalog"

// Per-framework system prompts. They pin the exact imports and class usage
// the generated code must contain so the advisory structure check downstream
// has something deterministic to look for.
const (
	langGraphSystemPrompt = `Generate a LangGraph agent system that:
1. Defines clear state machines with nodes/edges
2. Includes error handling and state management
3. Uses appropriate LangGraph primitives
4. Has well-defined entry points and transitions

IMPORTANT: Your code MUST include these exact imports and class usage:
- from langgraph.graph import StateGraph
- workflow = StateGraph(AgentState)  # NOT StateGraph({...}) - use proper class definition

CRITICAL: Define a proper state class as follows:
` + "```python" + `
class AgentState(dict):
    # This is a proper state class
    def __init__(self, input=None, outputs=None):
        self.input = input
        self.outputs = outputs or []
` + "```" + `

Return ONLY executable Python code with no explanations.`

	crewAISystemPrompt = `Create a CrewAI agent setup that:
1. Defines clear roles and goals
2. Sets up proper task delegation
3. Includes collaboration mechanisms
4. Uses CrewAI best practices

IMPORTANT: Your code MUST include these exact imports and class usage:
- from crewai import Agent, Task, Crew
- agent = Agent(...)
- task = Task(...)

Return ONLY valid Python code with crewai imports.`

	autoGenSystemPrompt = `Develop an AutoGen conversational agent system that:
1. Configures multiple agents with distinct roles
2. Sets up proper chat workflows
3. Includes termination conditions
4. Follows AutoGen conventions

IMPORTANT: Your code MUST include these exact imports and class usage:
- import autogen
- autogen.UserProxyAgent(...)
- autogen.AssistantAgent(...) or autogen.GroupChatManager(...)

Return ONLY the Python code with required configs.`
)

// SystemPrompt returns the system instruction for a framework.
func SystemPrompt(f catalog.Framework) string {
	switch f {
	case catalog.LangGraph:
		return langGraphSystemPrompt
	case catalog.CrewAI:
		return crewAISystemPrompt
	case catalog.AutoGen:
		return autoGenSystemPrompt
	}
	return ""
}

// structuralHint returns the framework-specific hint appended to the user
// prompt, steering the model toward the expected primitives.
func structuralHint(f catalog.Framework) string {
	switch f {
	case catalog.LangGraph:
		return "Use from langgraph.graph import StateGraph and define a workflow = StateGraph(...)"
	case catalog.CrewAI:
		return "Use from crewai import Agent, Task, Crew and create instances of each"
	case catalog.AutoGen:
		return "Use import autogen and create instances of autogen.UserProxyAgent and autogen.AssistantAgent"
	}
	return ""
}
