package notesdk

import "time"

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the wire shape of every API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the public view of an account. The password hash never leaves
// the server.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================================================
// Note Types
// ============================================================================

// Note is a note with its tags resolved.
type Note struct {
	ID           string     `json:"_id"`
	Owner        string     `json:"owner"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	IsArchived   bool       `json:"isArchived"`
	IsBookmarked bool       `json:"isBookmarked"`
	BookmarkedAt *time.Time `json:"bookmarkedAt,omitempty"`
	Tags         []Tag      `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CreateNoteRequest is the body of POST /api/v1/notes/new.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body of PUT /api/v1/notes/{id}. Nil fields are
// left untouched.
type UpdateNoteRequest struct {
	Title        *string `json:"title,omitempty"`
	Content      *string `json:"content,omitempty"`
	IsArchived   *bool   `json:"isArchived,omitempty"`
	IsBookmarked *bool   `json:"isBookmarked,omitempty"`
}

// BatchDeleteRequest is the body of DELETE /api/v1/notes/batch-delete.
type BatchDeleteRequest struct {
	SelectedNotes []string `json:"selectedNotes"`
}

// ============================================================================
// Tag Types
// ============================================================================

type Tag struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TagRequest is the body for creating or renaming a tag.
type TagRequest struct {
	Name string `json:"name"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates whether a session signing secret is loaded
	Signer string `json:"signer"`
}
