package handlers

// Version is reported by the health endpoint; overridden at build time with
// -ldflags "-X artist-dashboard/internal/handlers.Version=...".
var Version = "1.0.0"
