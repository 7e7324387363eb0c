package application

// Authorize reports whether the verified token subject may mutate a resource
// owned by ownerID. A false result is a normal access-denied branch for the
// boundary, not an error.
func Authorize(subject, ownerID string) bool {
	return subject != "" && subject == ownerID
}
