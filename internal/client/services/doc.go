// Package services provides typed request builders for the backend's
// resources: teams, projects and tasks. Every operation is a single
// authenticated round-trip through the API client; there is no caching,
// pagination or client-side joining.
//
// Input validation here is a UX nicety only. The backend stays the
// authority, and its rejections are surfaced even when the local checks
// passed.
package services
