package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the account name of register and login requests.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of register and login
	// requests.
	FieldPassword = "password"

	// FieldQuery targets the free-text query of search history and media
	// proxy requests.
	FieldQuery = "query"

	// FieldName targets the sender name of a contact form.
	FieldName = "name"

	// FieldEmail targets the sender address of a contact form.
	FieldEmail = "email"

	// FieldMessage targets the body of a contact form.
	FieldMessage = "message"

	// FieldPage targets the 1-based page of a media query.
	FieldPage = "page"

	// FieldMediaType targets the Openverse collection of a media query.
	FieldMediaType = "media_type"
)

// Openverse collections.
const (
	MediaTypeImage = "image"
	MediaTypeAudio = "audio"
)
