package analysis

// Phase is one step of the simulated processing run.
type Phase struct {
	Message  string `json:"message"`
	Progress int    `json:"progress"`
}

// Phases are executed in order, each after one step delay.
var Phases = []Phase{
	{Message: "Extracting text...", Progress: 20},
	{Message: "Counting words...", Progress: 40},
	{Message: "Checking for plagiarism...", Progress: 60},
	{Message: "Validating citations...", Progress: 80},
	{Message: "Generating summary...", Progress: 90},
	{Message: "Finalizing results...", Progress: 100},
}
