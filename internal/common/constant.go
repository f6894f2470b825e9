// Package common contains shared constants and sentinel errors used across
// Pennwest Connect client components.
package common

// MaxFileSize is the largest note file accepted for upload, in bytes.
// The backend enforces the same ceiling; the client checks it before
// any bytes travel.
const MaxFileSize = 10 * 1024 * 1024

// AllowedExtensions lists the file extensions (lowercase, with leading
// dot) that the backend accepts for note uploads.
var AllowedExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".png", ".jpg", ".jpeg"}

// TokenFileName is the name of the client-side token file, the
// cookie-equivalent credential store.
const TokenFileName = "token.json"

// TokenTTLDays is how long a stored access token is kept before it is
// treated as absent, matching the 7-day cookie the web client sets.
const TokenTTLDays = 7
