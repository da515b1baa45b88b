package dispatch

// Per-mode system instructions for one-shot generation calls.
const (
	summarizeInstruction = "You are a summarization expert. Summarize the given text " +
		"concisely in a few sentences, keeping every key point and dropping filler."

	codeInstruction = "You are an expert software engineer. Produce clean, idiomatic, " +
		"working code for the request, with a short explanation only where it is not obvious."

	webSearchInstruction = "Answer using up-to-date information from the web. " +
		"Cite what you found rather than guessing."

	dataInstruction = "You are a data analyst. Examine the attached data, answer the " +
		"question, and call out any notable patterns, outliers or caveats."

	imageInstruction = "Describe and analyze the attached image. Answer the user's " +
		"question about it; if no question is given, describe what the image shows."

	agentInstruction = "You are a planning agent. Break the task into explicit numbered " +
		"steps, work through each step in order using web search where it helps, " +
		"and finish with a consolidated answer."
)

const defaultImagePrompt = "Describe this image."
