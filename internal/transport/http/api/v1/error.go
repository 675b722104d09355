package apiv1

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Payload is the backend error body when the failure came from the backend.
	Payload any `json:"payload,omitempty"`
}
