package platform

// Package platform contains filesystem glue for the fetcher: creating the
// destination directory and locating the file the collaborator wrote.
