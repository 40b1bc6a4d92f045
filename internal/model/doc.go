package model

// Package model defines the value objects passed between the CLI, the fetch
// orchestrator and the fetcher backends: the download request, the
// configuration handed to the fetch collaborator, and the result of one run.
